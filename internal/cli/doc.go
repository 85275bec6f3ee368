// Package cli defines the Cobra command tree for the stencil CLI. The
// root command is the scaffolding flow itself; each other file registers
// one subcommand. Commands only handle flag parsing and I/O formatting
// and delegate the work to internal packages.
package cli
