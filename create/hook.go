package create

import (
	"fmt"
	"strings"

	"github.com/stencil-dev/stencil/execx"
	"github.com/stencil-dev/stencil/pkgmgr"
	"github.com/stencil-dev/stencil/schema"
	"github.com/stencil-dev/stencil/templates"
)

// HookContext is the capability surface handed to the After hook and to
// caveat functions: project metadata plus a command runner and package
// installer scoped to the new project.
type HookContext struct {
	Name       string
	ProjectDir string
	Template   templates.Info
	Year       int
	Contact    string
	Answers    schema.AnswerSet

	manager pkgmgr.Manager
}

// Run splits a whitespace-delimited command string into program and
// arguments and executes it in the project directory with inherited
// standard streams. Caller options are merged on top of the defaults:
// an empty Dir keeps the project directory, nil streams stay inherited.
func (c *HookContext) Run(command string, opts ...execx.Options) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("empty command")
	}
	o := execx.Options{Dir: c.ProjectDir}
	if len(opts) > 0 {
		o = opts[0]
		if o.Dir == "" {
			o.Dir = c.ProjectDir
		}
	}
	return execx.Run(parts[0], parts[1:], o)
}

// InstallPackage adds the named packages to the project using the
// detected package manager.
func (c *HookContext) InstallPackage(pkgs ...string) error {
	return c.manager.Add(c.ProjectDir, false, pkgs...)
}

// InstallDevPackage adds the named packages as development dependencies.
func (c *HookContext) InstallDevPackage(pkgs ...string) error {
	return c.manager.Add(c.ProjectDir, true, pkgs...)
}

// Manager returns the detected package manager.
func (c *HookContext) Manager() pkgmgr.Manager { return c.manager }

// Caveat is a post-creation note: either a fixed string or a function of
// the hook context. Anything else cannot be expressed, by construction.
type Caveat interface {
	resolve(*HookContext) string
}

// LiteralCaveat prints as-is.
type LiteralCaveat string

func (c LiteralCaveat) resolve(*HookContext) string { return string(c) }

// CaveatFunc computes the note from the hook context; returning "" prints
// nothing.
type CaveatFunc func(*HookContext) string

func (f CaveatFunc) resolve(ctx *HookContext) string { return f(ctx) }
