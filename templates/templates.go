// Package templates enumerates and resolves scaffolding templates.
//
// A template is a directory under the configured root. An optional name
// prefix (e.g. "template-") namespaces template directories; returned
// template names never include the prefix. A template may carry an
// optional stencil.yaml manifest with a description and a version
// constraint.
package templates

import (
	"os"
	"path/filepath"
	"strings"
)

// ManifestFile is the optional per-template manifest name. It is metadata
// for the resolver and is never copied into scaffolded projects.
const ManifestFile = "stencil.yaml"

// Info describes one available template.
type Info struct {
	Name        string // template name, prefix stripped
	Dir         string // absolute or root-relative directory path
	Description string // from the manifest, may be empty
	Requires    string // semver constraint from the manifest, may be empty
	Warnings    []string
}

// List returns the templates under root whose directory names carry
// prefix, in directory order. A missing or empty root yields an empty
// list, not an error, so scaffolding can run without templates
// configured.
func List(root, prefix string) ([]Info, error) {
	if root == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			name = strings.TrimPrefix(name, prefix)
		}
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		info := Info{Name: name, Dir: filepath.Join(root, entry.Name())}
		loadManifest(&info)
		infos = append(infos, info)
	}
	return infos, nil
}

// Resolve returns the template named name under root, reporting whether
// its directory exists.
func Resolve(root, prefix, name string) (Info, bool) {
	if root == "" || name == "" {
		return Info{}, false
	}
	dir := filepath.Join(root, prefix+name)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return Info{}, false
	}
	info := Info{Name: name, Dir: dir}
	loadManifest(&info)
	return info, true
}

// Names projects a template list to its names.
func Names(infos []Info) []string {
	names := make([]string, len(infos))
	for i, t := range infos {
		names[i] = t.Name
	}
	return names
}
