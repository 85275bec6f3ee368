// Package render materializes a template directory into a project
// directory, substituting view values into file contents and file names
// with text/template syntax.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode/utf8"

	"github.com/stencil-dev/stencil/templates"
)

// excludedNames are never copied out of a template tree.
var excludedNames = map[string]bool{
	".git":         true,
	"node_modules": true,
	".DS_Store":    true,
}

// Input is the renderer contract: copy TemplateDir into ProjectDir,
// substituting View values.
type Input struct {
	ProjectDir  string
	TemplateDir string
	View        map[string]any
}

// Copy renders the template tree into the project directory. Any I/O or
// template error fails loudly; partial output is left for the caller to
// inspect.
func Copy(in Input) error {
	if _, err := os.Stat(in.TemplateDir); err != nil {
		return fmt.Errorf("template directory %s: %w", in.TemplateDir, err)
	}
	return copyTree(in.TemplateDir, in.ProjectDir, in.View, true)
}

func copyTree(src, dst string, view map[string]any, top bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}
		// The template manifest is resolver metadata, not project content.
		if top && entry.Name() == templates.ManifestFile {
			continue
		}

		outName, err := renderString(entry.Name(), view)
		if err != nil {
			return fmt.Errorf("rendering name %q: %w", entry.Name(), err)
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, outName)

		switch {
		case entry.IsDir():
			if err := copyTree(srcPath, dstPath, view, false); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := renderFile(srcPath, dstPath, view); err != nil {
				return err
			}
		}
		// Symlinks and other special files are skipped.
	}
	return nil
}

func renderFile(src, dst string, view map[string]any) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	// Binary files pass through untouched.
	if isBinary(data) {
		return os.WriteFile(dst, data, srcInfo.Mode().Perm())
	}

	tmpl, err := template.New(filepath.Base(src)).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", src, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("executing template %s: %w", src, err)
	}
	return os.WriteFile(dst, buf.Bytes(), srcInfo.Mode().Perm())
}

func renderString(s string, view map[string]any) (string, error) {
	tmpl, err := template.New("name").Option("missingkey=error").Parse(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) != -1 || !utf8.Valid(data)
}
