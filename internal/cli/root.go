package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-dev/stencil/create"
	"github.com/stencil-dev/stencil/internal/branding"
	"github.com/stencil-dev/stencil/internal/config"
	"github.com/stencil-dev/stencil/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagInteractive  bool
	flagVerbose      bool
	flagTemplateRoot string
	flagSkipLicense  bool
	flagSkipGit      bool
)

// optionFlagNames are the flags backed by the option schema. Only flags
// the user actually set are forwarded, so prompt policies can tell an
// explicit value from an absent one.
var optionFlagNames = []string{"description", "author", "email", "template", "license"}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <name|.>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new project from a template directory: it collects
configuration (interactively or from flags), renders the template tree,
writes a LICENSE, installs dependencies, and initializes a git repository.

Pass "." to scaffold into the current directory using its name.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(flagVerbose)
		config.Load()
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagTemplateRoot, "template-root", "", "Directory holding templates (default: ~/"+branding.HomeDir()+"/templates)")

	rootCmd.Flags().BoolVar(&flagInteractive, "interactive", true, "Allow interactive prompts")
	rootCmd.Flags().BoolVar(&flagSkipLicense, "skip-license", false, "Skip LICENSE generation and related prompts")
	rootCmd.Flags().BoolVar(&flagSkipGit, "skip-git", false, "Skip git repository initialization")

	rootCmd.Flags().String("description", "", "Project description")
	rootCmd.Flags().String("author", "", "Author name")
	rootCmd.Flags().String("email", "", "Author email")
	rootCmd.Flags().String("template", "", "Template name")
	rootCmd.Flags().String("license", "", "License identifier (e.g. MIT)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	flags := make(map[string]string)
	for _, name := range optionFlagNames {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			flags[name] = v
		}
	}

	nameArg := ""
	if len(args) > 0 {
		nameArg = args[0]
	}

	in := create.Input{
		NameArg:     nameArg,
		Flags:       flags,
		Interactive: flagInteractive,
	}
	opts := create.Options{
		TemplateRoot:      templateRoot(),
		PromptForTemplate: true,
		SkipLicense:       flagSkipLicense,
		SkipGit:           flagSkipGit,
		Version:           buildVersion,
		Out:               cmd.OutOrStdout(),
	}
	return create.Create(branding.CLIName(), in, opts)
}

// templateRoot resolves the templates directory: flag, then config file,
// then ~/.stencil/templates.
func templateRoot() string {
	if flagTemplateRoot != "" {
		return flagTemplateRoot
	}
	if v := config.Get("template_root"); v != "" {
		return v
	}
	return filepath.Join(config.Dir(), "templates")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
