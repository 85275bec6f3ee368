package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

//go:embed schema/manifest.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

type manifest struct {
	Description string `yaml:"description"`
	Requires    string `yaml:"requires"`
}

// loadManifest reads and validates the template's stencil.yaml, if any.
// A missing manifest is fine; a malformed or invalid one degrades to
// warnings on the Info so discovery never fails on bad metadata.
func loadManifest(info *Info) {
	data, err := os.ReadFile(filepath.Join(info.Dir, ManifestFile))
	if err != nil {
		return
	}

	if issues := validateManifest(data); len(issues) > 0 {
		for _, issue := range issues {
			info.Warnings = append(info.Warnings,
				fmt.Sprintf("template %s: %s: %s", info.Name, ManifestFile, issue))
		}
		return
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		info.Warnings = append(info.Warnings,
			fmt.Sprintf("template %s: parsing %s: %v", info.Name, ManifestFile, err))
		return
	}
	info.Description = m.Description
	info.Requires = m.Requires
}

// Compatible reports whether the template's Requires constraint admits
// the given tool version. An empty constraint, an unreleased ("dev")
// build, or an unparseable version always passes; only a well-formed
// constraint that excludes a well-formed version fails.
func (t Info) Compatible(version string) (bool, error) {
	if t.Requires == "" || version == "" || version == "dev" {
		return true, nil
	}
	c, err := semver.NewConstraint(t.Requires)
	if err != nil {
		return true, fmt.Errorf("template %s: invalid requires constraint %q: %w", t.Name, t.Requires, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return true, nil
	}
	return c.Check(v), nil
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("manifest.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("manifest.schema.json")
	})
	return compiledSchema, compileErr
}

// validateManifest checks raw YAML against the embedded JSON schema and
// returns human-readable issues, or nil when valid.
func validateManifest(data []byte) []string {
	s, err := getSchema()
	if err != nil {
		return []string{err.Error()}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []string{fmt.Sprintf("parsing YAML: %v", err)}
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return []string{fmt.Sprintf("converting to JSON: %v", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return []string{fmt.Sprintf("preparing JSON: %v", err)}
	}

	err = s.Validate(inst)
	if err == nil {
		return nil
	}
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var issues []string
	for _, cause := range validationErr.Causes {
		issues = append(issues, cause.Error())
	}
	if len(issues) == 0 {
		issues = append(issues, validationErr.Error())
	}
	return issues
}
