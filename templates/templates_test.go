package templates

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestList(t *testing.T) {
	t.Run("empty root yields no templates", func(t *testing.T) {
		infos, err := List("", "")
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(infos) != 0 {
			t.Errorf("got %d templates, want 0", len(infos))
		}
	})

	t.Run("missing root yields no templates", func(t *testing.T) {
		infos, err := List(filepath.Join(t.TempDir(), "nope"), "")
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(infos) != 0 {
			t.Errorf("got %d templates, want 0", len(infos))
		}
	})

	t.Run("prefix filters and strips", func(t *testing.T) {
		root := t.TempDir()
		mkdir(t, root, "template-default")
		mkdir(t, root, "template-ts")
		mkdir(t, root, "unrelated")
		writeFile(t, filepath.Join(root, "stray.txt"), "not a template")

		infos, err := List(root, "template-")
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		got := Names(infos)
		want := []string{"default", "ts"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("names = %v, want %v", got, want)
		}
	})

	t.Run("manifest enriches info", func(t *testing.T) {
		root := t.TempDir()
		dir := mkdir(t, root, "ts")
		writeFile(t, filepath.Join(dir, ManifestFile), "description: TypeScript starter\nrequires: \">= 0.2.0\"\n")

		infos, err := List(root, "")
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(infos) != 1 {
			t.Fatalf("got %d templates, want 1", len(infos))
		}
		if infos[0].Description != "TypeScript starter" {
			t.Errorf("description = %q", infos[0].Description)
		}
		if infos[0].Requires != ">= 0.2.0" {
			t.Errorf("requires = %q", infos[0].Requires)
		}
		if len(infos[0].Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", infos[0].Warnings)
		}
	})

	t.Run("invalid manifest degrades to warnings", func(t *testing.T) {
		root := t.TempDir()
		dir := mkdir(t, root, "bad")
		writeFile(t, filepath.Join(dir, ManifestFile), "description: ok\nbogus_key: true\n")

		infos, err := List(root, "")
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(infos) != 1 {
			t.Fatalf("got %d templates, want 1", len(infos))
		}
		if len(infos[0].Warnings) == 0 {
			t.Error("expected warnings for invalid manifest")
		}
		if infos[0].Description != "" {
			t.Errorf("description = %q, want empty on invalid manifest", infos[0].Description)
		}
	})
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "template-default")

	if _, ok := Resolve(root, "template-", "default"); !ok {
		t.Error("Resolve(default) = false, want true")
	}
	if _, ok := Resolve(root, "template-", "missing"); ok {
		t.Error("Resolve(missing) = true, want false")
	}
	if _, ok := Resolve("", "template-", "default"); ok {
		t.Error("Resolve with empty root = true, want false")
	}
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		name     string
		requires string
		version  string
		want     bool
	}{
		{"no constraint", "", "0.1.0", true},
		{"dev build", ">= 1.0.0", "dev", true},
		{"satisfied", ">= 0.2.0", "0.3.1", true},
		{"unsatisfied", ">= 0.2.0", "0.1.0", false},
		{"unparseable version passes", ">= 0.2.0", "weird", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := Info{Name: "x", Requires: tc.requires}
			got, err := info.Compatible(tc.version)
			if err != nil {
				t.Fatalf("Compatible error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tc.requires, tc.version, got, tc.want)
			}
		})
	}

	t.Run("invalid constraint reports but passes", func(t *testing.T) {
		info := Info{Name: "x", Requires: "not-a-constraint"}
		got, err := info.Compatible("0.1.0")
		if err == nil {
			t.Error("expected error for invalid constraint")
		}
		if !got {
			t.Error("invalid constraint should not block the template")
		}
	})
}

func mkdir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
