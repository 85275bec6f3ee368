// Package gitutil reads ambient version-control identity and initializes
// repositories for freshly scaffolded projects.
package gitutil

import (
	"errors"
	"os/exec"

	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/stencil-dev/stencil/execx"
)

// ErrUnavailable is returned by Init when no git executable is on PATH.
// Callers treat this as "nothing to do", not as a failure.
var ErrUnavailable = errors.New("git executable not found in PATH")

// Identity is the user name and email from the global git configuration.
type Identity struct {
	Name  string
	Email string
}

// LoadIdentity reads user.name and user.email from the global gitconfig.
// Any failure degrades to an empty identity; scaffolding proceeds with
// empty defaults rather than aborting.
func LoadIdentity() Identity {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return Identity{}
	}
	return Identity{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
	}
}

// Init runs `git init` in dir with default settings.
//
// Tool-unavailable detection policy: a missing git binary (LookPath
// failure) yields ErrUnavailable, which callers swallow. An error from
// running `git init` itself is a real failure and is returned as-is.
func Init(dir string) error {
	path, err := exec.LookPath("git")
	if err != nil {
		return ErrUnavailable
	}
	return execx.Run(path, []string{"init"}, execx.Options{Dir: dir})
}
