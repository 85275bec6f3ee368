// Package schema defines the option schema resolved against CLI arguments
// and interactive input, and the answer set that results.
package schema

import (
	"fmt"
	"strings"
)

// Policy controls when an option is asked interactively.
type Policy int

const (
	// PromptIfNoArg asks only when no CLI argument supplied the value.
	PromptIfNoArg Policy = iota
	// PromptAlways asks even when an argument is present.
	PromptAlways
	// PromptNever resolves from the argument or the default, never a prompt.
	PromptNever
)

// Kind selects the interactive control used for an option.
type Kind int

const (
	// KindInput is a free-form text field.
	KindInput Kind = iota
	// KindConfirm is a yes/no toggle.
	KindConfirm
	// KindSelect is a single choice from Choices.
	KindSelect
)

// Option describes one configurable value.
type Option struct {
	Name        string
	Kind        Kind
	Description string
	Default     any
	Prompt      Policy
	Choices     []string
}

// Schema is an ordered set of options, unique by name. Later additions
// with an existing name replace the earlier entry in place, which is how
// callers override base options without disturbing prompt order.
type Schema struct {
	opts []Option
}

// New builds a schema from the given options, applying name-replacement
// semantics in order.
func New(opts ...Option) *Schema {
	s := &Schema{}
	for _, o := range opts {
		s.Add(o)
	}
	return s
}

// Add inserts an option, replacing any existing option of the same name.
func (s *Schema) Add(o Option) {
	for i, existing := range s.opts {
		if existing.Name == o.Name {
			s.opts[i] = o
			return
		}
	}
	s.opts = append(s.opts, o)
}

// Options returns the options in prompt order.
func (s *Schema) Options() []Option {
	return s.opts
}

// Get looks up an option by name.
func (s *Schema) Get(name string) (Option, bool) {
	for _, o := range s.opts {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Len returns the number of options.
func (s *Schema) Len() int { return len(s.opts) }

// AnswerSet maps option names to resolved values. Every schema option is
// present once resolution completes.
type AnswerSet map[string]any

// String returns the answer for key rendered as a string, or "" when the
// key is absent.
func (a AnswerSet) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool returns the answer for key as a bool; non-bool values are false.
func (a AnswerSet) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// reservedKeys are always excluded from the render view.
var reservedKeys = map[string]bool{
	"interactive": true,
	"template":    true,
}

// Project filters an answer set down to the key/value view handed to the
// renderer: reserved keys and keys marked internal by a leading '$' or
// '_' are dropped; everything else passes through verbatim.
func Project(a AnswerSet) map[string]any {
	view := make(map[string]any, len(a))
	for k, v := range a {
		if reservedKeys[k] {
			continue
		}
		if strings.HasPrefix(k, "$") || strings.HasPrefix(k, "_") {
			continue
		}
		view[k] = v
	}
	return view
}
