// Package naming derives the project name and directory from the CLI
// positional argument, and computes name variants for the render view.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Resolve turns the positional argument into a project name and directory.
// An argument of "." means "scaffold into the current directory using its
// basename as the name". modify, when non-nil, transforms the name before
// the directory is derived. defaultPath overrides the parent directory for
// non-"." targets (default: the current directory).
func Resolve(arg string, modify func(string) string, defaultPath string) (name, projectDir string, err error) {
	if arg == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("resolving current directory: %w", err)
		}
		name = filepath.Base(cwd)
		if modify != nil {
			name = modify(name)
		}
		return name, cwd, nil
	}

	name = arg
	if modify != nil {
		name = modify(name)
	}

	parent := defaultPath
	if parent == "" {
		parent = "."
	}
	return name, filepath.Join(parent, name), nil
}

// Camel converts a kebab- or snake-case name to lowerCamelCase.
func Camel(name string) string {
	parts := split(name)
	if len(parts) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	for _, p := range parts[1:] {
		b.WriteString(titleCaser.String(p))
	}
	return b.String()
}

// Title converts a kebab- or snake-case name to a space-separated title,
// e.g. "my-app" → "My App".
func Title(name string) string {
	parts := split(name)
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, " ")
}

func split(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}
