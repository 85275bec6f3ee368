package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stencil-dev/stencil/internal/output"
	"github.com/stencil-dev/stencil/templates"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long:  `List the templates under the configured template root, with descriptions from their manifests.`,
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(templatesCmd)
}

type templateEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Requires    string `json:"requires,omitempty"`
	Dir         string `json:"dir"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	infos, err := templates.List(templateRoot(), "")
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}
	for _, t := range infos {
		for _, w := range t.Warnings {
			output.Warn(w)
		}
	}

	if len(infos) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates found under %s.\n", templateRoot())
		return nil
	}

	if templatesJSON {
		entries := make([]templateEntry, 0, len(infos))
		for _, t := range infos {
			entries = append(entries, templateEntry{
				Name:        t.Name,
				Description: t.Description,
				Requires:    t.Requires,
				Dir:         t.Dir,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling templates: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, t := range infos {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
	}
	return w.Flush()
}
