package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stencil-dev/stencil/templates"
)

func TestCopy(t *testing.T) {
	src := t.TempDir()
	write(t, src, "README.md", "# {{.name}}\n\n{{.description}}\n")
	write(t, src, templates.ManifestFile, "description: meta only\n")
	write(t, src, "{{.name}}.txt", "hello from {{.name}}\n")
	if err := os.MkdirAll(filepath.Join(src, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	write(t, src, "src/main.js", "console.log('{{.name}}')\n")
	if err := os.MkdirAll(filepath.Join(src, "node_modules", "junk"), 0755); err != nil {
		t.Fatal(err)
	}
	write(t, src, "logo.bin", "PNG\x00\x01\x02binary")

	dst := filepath.Join(t.TempDir(), "out")
	err := Copy(Input{
		ProjectDir:  dst,
		TemplateDir: src,
		View:        map[string]any{"name": "demo", "description": "a demo"},
	})
	if err != nil {
		t.Fatalf("Copy error: %v", err)
	}

	if got := read(t, dst, "README.md"); got != "# demo\n\na demo\n" {
		t.Errorf("README.md = %q", got)
	}
	if got := read(t, dst, "demo.txt"); got != "hello from demo\n" {
		t.Errorf("demo.txt = %q", got)
	}
	if got := read(t, dst, "src/main.js"); got != "console.log('demo')\n" {
		t.Errorf("src/main.js = %q", got)
	}
	if got := read(t, dst, "logo.bin"); got != "PNG\x00\x01\x02binary" {
		t.Errorf("binary file altered: %q", got)
	}

	for _, absent := range []string{templates.ManifestFile, "node_modules"} {
		if _, err := os.Stat(filepath.Join(dst, absent)); !os.IsNotExist(err) {
			t.Errorf("%s should not be copied", absent)
		}
	}
}

func TestCopyMissingTemplateDir(t *testing.T) {
	err := Copy(Input{
		ProjectDir:  t.TempDir(),
		TemplateDir: filepath.Join(t.TempDir(), "nope"),
		View:        map[string]any{},
	})
	if err == nil {
		t.Fatal("expected error for missing template dir")
	}
}

func TestCopyUnknownKeyFailsLoudly(t *testing.T) {
	src := t.TempDir()
	write(t, src, "bad.txt", "{{.doesNotExist}}")

	err := Copy(Input{
		ProjectDir:  filepath.Join(t.TempDir(), "out"),
		TemplateDir: src,
		View:        map[string]any{"name": "demo"},
	})
	if err == nil {
		t.Fatal("expected error for unknown view key")
	}
}

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}
