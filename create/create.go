// Package create drives the scaffolding pipeline: validate the
// destination, assemble and resolve the option schema, render the chosen
// template, then run the post-creation stages (license, dependency
// install, repository init, caller hook, caveat).
//
// Stage failure policy: destination and template validation, rendering,
// dependency installation, and the caller hook are fatal. License
// generation is best-effort, and a missing git binary is tolerated; both
// are logged and the pipeline continues.
package create

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stencil-dev/stencil/internal/config"
	"github.com/stencil-dev/stencil/internal/gitutil"
	"github.com/stencil-dev/stencil/internal/license"
	"github.com/stencil-dev/stencil/internal/naming"
	"github.com/stencil-dev/stencil/internal/output"
	"github.com/stencil-dev/stencil/internal/prompt"
	"github.com/stencil-dev/stencil/internal/render"
	"github.com/stencil-dev/stencil/pkgmgr"
	"github.com/stencil-dev/stencil/schema"
	"github.com/stencil-dev/stencil/templates"
)

// Create scaffolds one project and returns when the pipeline has either
// completed or hit a fatal stage. appName is the invoking tool's name,
// used in the usage line.
func Create(appName string, in Input, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// Missing project name is not an error: print usage and stop.
	if in.NameArg == "" {
		fmt.Fprintf(out, "Usage: %s <name>\n", appName)
		return nil
	}

	name, projectDir, err := naming.Resolve(in.NameArg, opts.ModifyName, opts.DefaultPath)
	if err != nil {
		return err
	}

	if err := ensureEmptyDestination(projectDir); err != nil {
		return err
	}

	available, err := templates.List(opts.TemplateRoot, opts.TemplatePrefix)
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}
	for _, t := range available {
		for _, w := range t.Warnings {
			output.Warn(w)
		}
	}

	s := buildSchema(available, opts)

	answers, err := prompt.Resolve(s, in.Flags, in.Interactive)
	if err != nil {
		return err
	}

	tmpl, ok := templates.Resolve(opts.TemplateRoot, opts.TemplatePrefix, answers.String("template"))
	if !ok {
		return &ValidationError{Reason: fmt.Sprintf("no template found for %q", answers.String("template"))}
	}
	if compatible, cerr := tmpl.Compatible(opts.Version); cerr != nil {
		output.Warn(cerr.Error())
	} else if !compatible {
		output.Warn("template requires a newer version",
			"template", tmpl.Name, "requires", tmpl.Requires, "version", opts.Version)
	}

	year := time.Now().Year()
	contact := formatContact(answers.String("author"), answers.String("email"))

	view := schema.Project(answers)
	view["name"] = name
	view["nameCamel"] = naming.Camel(name)
	view["nameTitle"] = naming.Title(name)
	view["year"] = year
	view["contact"] = contact

	if err := render.Copy(render.Input{
		ProjectDir:  projectDir,
		TemplateDir: tmpl.Dir,
		View:        view,
	}); err != nil {
		return fmt.Errorf("rendering template %s: %w", tmpl.Name, err)
	}

	if !opts.SkipLicense {
		if err := writeLicense(projectDir, name, answers, year, contact); err != nil {
			output.Warn("skipping license generation", "err", err)
		}
	}

	manager := pkgmgr.Detect()
	if pkgmgr.HasManifest(projectDir) {
		output.Info("installing dependencies", "manager", manager.String())
		if err := manager.Install(projectDir); err != nil {
			return fmt.Errorf("installDeps failed: %w", err)
		}
	}

	if !opts.SkipGit {
		switch err := gitutil.Init(projectDir); {
		case errors.Is(err, gitutil.ErrUnavailable):
			output.Debug("git not found, skipping repository init")
		case err != nil:
			return fmt.Errorf("initializing repository: %w", err)
		}
	}

	hookCtx := &HookContext{
		Name:       name,
		ProjectDir: projectDir,
		Template:   tmpl,
		Year:       year,
		Contact:    contact,
		Answers:    answers,
		manager:    manager,
	}
	if opts.After != nil {
		if err := opts.After(hookCtx); err != nil {
			return err
		}
	}

	if opts.Caveat != nil {
		if text := opts.Caveat.resolve(hookCtx); text != "" {
			output.Caveat(out, text)
		}
	}

	output.Success(out, fmt.Sprintf("Created %s. Happy hacking!", name))
	return nil
}

// ensureEmptyDestination accepts a nonexistent path or an empty
// directory; anything else fails before a single write happens.
func ensureEmptyDestination(dir string) error {
	fi, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return &ValidationError{Reason: fmt.Sprintf("destination %s exists and is not a directory", dir)}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return &ValidationError{Reason: fmt.Sprintf("destination %s is not empty", dir)}
	}
	return nil
}

// buildSchema assembles the option schema from the base options, config
// file and git-identity defaults, template discovery, and caller extras.
func buildSchema(available []templates.Info, opts Options) *schema.Schema {
	identity := gitutil.LoadIdentity()

	author := config.Get("author")
	if author == "" {
		author = identity.Name
	}
	email := config.Get("email")
	if email == "" {
		email = identity.Email
	}
	defaultLicense := config.Get("license")
	if defaultLicense == "" {
		defaultLicense = "MIT"
	}

	// When license generation is off, its prompts go with it.
	descriptivePolicy := schema.PromptIfNoArg
	if opts.SkipLicense {
		descriptivePolicy = schema.PromptNever
	}

	templateDefault := opts.DefaultTemplate
	if templateDefault == "" && len(available) > 0 {
		templateDefault = available[0].Name
	}
	templatePolicy := schema.PromptNever
	if len(available) > 1 && opts.PromptForTemplate {
		templatePolicy = schema.PromptIfNoArg
	}

	s := schema.New(
		schema.Option{
			Name:        "description",
			Description: "Project description",
			Default:     "",
			Prompt:      descriptivePolicy,
		},
		schema.Option{
			Name:        "author",
			Description: "Author name",
			Default:     author,
			Prompt:      descriptivePolicy,
		},
		schema.Option{
			Name:        "email",
			Description: "Author email",
			Default:     email,
			Prompt:      descriptivePolicy,
		},
		schema.Option{
			Name:        "license",
			Kind:        schema.KindSelect,
			Description: "License",
			Default:     defaultLicense,
			Choices:     license.Available(),
			Prompt:      descriptivePolicy,
		},
		schema.Option{
			Name:        "template",
			Kind:        schema.KindSelect,
			Description: "Template",
			Default:     templateDefault,
			Choices:     templates.Names(available),
			Prompt:      templatePolicy,
		},
	)
	for _, o := range opts.Extra {
		s.Add(o)
	}
	return s
}

func writeLicense(projectDir, name string, answers schema.AnswerSet, year int, contact string) error {
	text, err := license.Generate(answers.String("license"), license.Options{
		Year:         year,
		Project:      name,
		Description:  answers.String("description"),
		Organization: contact,
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(projectDir, "LICENSE"), text.Assemble())
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// formatContact renders "Author <email>", dropping whichever half is
// missing.
func formatContact(author, email string) string {
	switch {
	case author == "":
		return email
	case email == "":
		return author
	default:
		return fmt.Sprintf("%s <%s>", author, email)
	}
}
