package schema

import (
	"reflect"
	"testing"
)

func TestSchemaAdd(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		s := New(
			Option{Name: "a"},
			Option{Name: "b"},
			Option{Name: "c"},
		)
		got := names(s)
		want := []string{"a", "b", "c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Options order = %v, want %v", got, want)
		}
	})

	t.Run("replaces by name in place", func(t *testing.T) {
		s := New(
			Option{Name: "a", Default: "old"},
			Option{Name: "b"},
		)
		s.Add(Option{Name: "a", Default: "new"})

		if s.Len() != 2 {
			t.Fatalf("Len = %d, want 2", s.Len())
		}
		got := names(s)
		if !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("Options order = %v, want [a b]", got)
		}
		opt, ok := s.Get("a")
		if !ok || opt.Default != "new" {
			t.Errorf("Get(a) = %+v, want Default new", opt)
		}
	})
}

func TestAnswerSetAccessors(t *testing.T) {
	a := AnswerSet{
		"name":  "demo",
		"count": 3,
		"yes":   true,
	}
	if got := a.String("name"); got != "demo" {
		t.Errorf("String(name) = %q, want demo", got)
	}
	if got := a.String("count"); got != "3" {
		t.Errorf("String(count) = %q, want 3", got)
	}
	if got := a.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if !a.Bool("yes") {
		t.Error("Bool(yes) = false, want true")
	}
	if a.Bool("name") {
		t.Error("Bool(name) = true for non-bool value")
	}
}

func TestProject(t *testing.T) {
	a := AnswerSet{
		"description": "a tool",
		"author":      "Ada",
		"template":    "ts",
		"interactive": true,
		"$internal":   "x",
		"_hidden":     "y",
		"custom":      "kept",
	}

	view := Project(a)

	for _, excluded := range []string{"template", "interactive", "$internal", "_hidden"} {
		if _, ok := view[excluded]; ok {
			t.Errorf("view contains excluded key %q", excluded)
		}
	}
	if view["description"] != "a tool" || view["author"] != "Ada" || view["custom"] != "kept" {
		t.Errorf("view dropped or altered pass-through keys: %v", view)
	}
}

func names(s *Schema) []string {
	var out []string
	for _, o := range s.Options() {
		out = append(out, o.Name)
	}
	return out
}
