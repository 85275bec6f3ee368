// Package pkgmgr detects the available JavaScript package manager and
// shapes install invocations for it.
//
// Yarn scopes commands to a project with its --cwd flag; npm has no such
// flag, so its commands run with the child process working directory set
// to the project instead. Neither path mutates the parent's working
// directory.
package pkgmgr

import (
	"os"
	"path/filepath"

	"github.com/stencil-dev/stencil/execx"
)

// Manager identifies a package manager backend.
type Manager int

const (
	// Npm is the fallback manager, always assumed present.
	Npm Manager = iota
	// Yarn is preferred when its version query succeeds.
	Yarn
)

func (m Manager) String() string {
	if m == Yarn {
		return "yarn"
	}
	return "npm"
}

// Detect probes for yarn by running its version query and falls back to
// npm otherwise.
func Detect() Manager {
	if execx.Available("yarn", "--version") {
		return Yarn
	}
	return Npm
}

// HasManifest reports whether dir contains a package manifest that would
// make a dependency install meaningful.
func HasManifest(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "package.json"))
	return err == nil
}

// InstallCommand returns the argv and child working directory for
// installing the dependencies declared in dir.
func (m Manager) InstallCommand(dir string) (args []string, cmdDir string) {
	if m == Yarn {
		return []string{"install", "--cwd", dir}, ""
	}
	return []string{"install"}, dir
}

// AddCommand returns the argv and child working directory for adding the
// named packages to the project in dir.
func (m Manager) AddCommand(dir string, dev bool, pkgs ...string) (args []string, cmdDir string) {
	if m == Yarn {
		args = []string{"add", "--cwd", dir}
		if dev {
			args = append(args, "--dev")
		}
		return append(args, pkgs...), ""
	}
	args = []string{"install"}
	if dev {
		args = append(args, "--save-dev")
	}
	return append(args, pkgs...), dir
}

// Install runs a dependency install for dir with inherited stdio.
func (m Manager) Install(dir string) error {
	args, cmdDir := m.InstallCommand(dir)
	return execx.Run(m.String(), args, execx.Options{Dir: cmdDir})
}

// Add installs the named packages into the project in dir.
func (m Manager) Add(dir string, dev bool, pkgs ...string) error {
	args, cmdDir := m.AddCommand(dir, dev, pkgs...)
	return execx.Run(m.String(), args, execx.Options{Dir: cmdDir})
}
