// Package execx spawns external commands for the scaffolding pipeline.
// One spawn attempt per call; callers decide whether to retry.
package execx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Options adjusts how a command is spawned. Zero values inherit the
// parent's standard streams and working directory. Dir is always passed
// explicitly on the child process; the parent's working directory is
// never mutated.
type Options struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// Run spawns name with args and waits for it to exit. It returns nil on a
// zero exit status, a *CommandError on a non-zero one, and a wrapped
// error when the command could not be started at all.
func Run(name string, args []string, opts Options) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Command:  strings.Join(append([]string{name}, args...), " "),
			ExitCode: exitErr.ExitCode(),
		}
	}
	return fmt.Errorf("running %s: %w", name, err)
}

// Available reports whether name is on PATH and the given probe
// invocation (e.g. "--version") exits successfully. Output is discarded.
func Available(name string, args ...string) bool {
	path, err := exec.LookPath(name)
	if err != nil {
		return false
	}
	err = Run(path, args, Options{
		Stdin:  strings.NewReader(""),
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	return err == nil
}
