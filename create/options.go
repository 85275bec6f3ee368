package create

import (
	"io"

	"github.com/stencil-dev/stencil/schema"
)

// Options configures one scaffolding run. It is the embedding contract:
// a downstream create-* binary fills this in and calls Create.
type Options struct {
	// TemplateRoot is the directory holding template directories.
	TemplateRoot string
	// TemplatePrefix namespaces template directories (e.g. "template-").
	// Template names never include it.
	TemplatePrefix string
	// PromptForTemplate enables the template prompt when more than one
	// template is available. With a single template the choice is made
	// silently regardless.
	PromptForTemplate bool
	// DefaultTemplate is used when the template option goes unprompted.
	// Empty means the first available template.
	DefaultTemplate string

	// SkipLicense disables LICENSE generation and suppresses the
	// description/author/email/license prompts.
	SkipLicense bool
	// SkipGit disables repository initialization.
	SkipGit bool

	// ModifyName transforms the project name before the directory is
	// derived (e.g. enforcing a "create-" prefix).
	ModifyName func(string) string
	// DefaultPath overrides the parent directory for new projects.
	DefaultPath string

	// Extra options are merged into the schema last and may override
	// base options by name.
	Extra []schema.Option

	// After runs once the project exists, with a HookContext scoped to
	// it. An error aborts the pipeline and propagates to the caller.
	After func(*HookContext) error
	// Caveat is printed after a successful hook run, if it resolves to
	// a non-empty string.
	Caveat Caveat

	// Version is the running tool version, checked against template
	// `requires` constraints. Empty or "dev" disables the check.
	Version string

	// Out receives usage, caveat, and confirmation lines. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Input carries the already-parsed CLI surface for one invocation.
type Input struct {
	// NameArg is the first positional argument; "." targets the current
	// directory. Empty prints usage and returns without error.
	NameArg string
	// Flags holds raw CLI values per option name. Presence of a key
	// means the flag was supplied.
	Flags map[string]string
	// Interactive permits prompting; false resolves everything from
	// flags and defaults.
	Interactive bool
}
