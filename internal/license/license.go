// Package license generates LICENSE file text from embedded SPDX
// templates. Each license splits into header, body, and warranty
// sections; the final file is their exact concatenation, with missing
// sections contributing the empty string.
package license

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"text/template"

	"go.yaml.in/yaml/v3"
)

//go:embed texts/*.yaml
var textsFS embed.FS

// Options are the substitution values available to license templates.
type Options struct {
	Year         int
	Project      string
	Description  string
	Organization string
}

// Text is a generated license split into its sections.
type Text struct {
	Header   string
	Body     string
	Warranty string
}

// Assemble concatenates the sections in order with no separators.
func (t Text) Assemble() string {
	return t.Header + t.Body + t.Warranty
}

type entry struct {
	ID       string `yaml:"id"`
	Header   string `yaml:"header"`
	Body     string `yaml:"body"`
	Warranty string `yaml:"warranty"`
}

var (
	loadOnce sync.Once
	loadErr  error
	catalog  map[string]entry // keyed by lowercase SPDX id
)

func loadCatalog() (map[string]entry, error) {
	loadOnce.Do(func() {
		catalog = make(map[string]entry)
		err := fs.WalkDir(textsFS, "texts", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := textsFS.ReadFile(path)
			if err != nil {
				return err
			}
			var e entry
			if err := yaml.Unmarshal(data, &e); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			catalog[strings.ToLower(e.ID)] = e
			return nil
		})
		if err != nil {
			loadErr = fmt.Errorf("loading license catalog: %w", err)
		}
	})
	return catalog, loadErr
}

// Available returns the known SPDX identifiers, sorted.
func Available() []string {
	cat, err := loadCatalog()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(cat))
	for _, e := range cat {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids
}

// Generate renders the license identified by id (case-insensitive SPDX
// identifier) with the given options.
func Generate(id string, o Options) (Text, error) {
	cat, err := loadCatalog()
	if err != nil {
		return Text{}, err
	}
	e, ok := cat[strings.ToLower(id)]
	if !ok {
		return Text{}, fmt.Errorf("unknown license %q (known: %s)", id, strings.Join(Available(), ", "))
	}

	t := Text{}
	if t.Header, err = renderSection(e.ID+"/header", e.Header, o); err != nil {
		return Text{}, err
	}
	if t.Body, err = renderSection(e.ID+"/body", e.Body, o); err != nil {
		return Text{}, err
	}
	if t.Warranty, err = renderSection(e.ID+"/warranty", e.Warranty, o); err != nil {
		return Text{}, err
	}
	return t, nil
}

func renderSection(name, text string, o Options) (string, error) {
	if text == "" {
		return "", nil
	}
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing license section %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, o); err != nil {
		return "", fmt.Errorf("rendering license section %s: %w", name, err)
	}
	return buf.String(), nil
}
