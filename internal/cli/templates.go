package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	tmpl "github.com/fjglira/GoSpecRunner/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the report templates available to the markdown writer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		engine, err := tmpl.NewEngine(cfg.Templates.Directory, cfg.Templates.Default)
		if err != nil {
			return fmt.Errorf("failed to create template engine: %w", err)
		}

		for _, name := range engine.ListTemplates() {
			marker := " "
			if name == cfg.Templates.Default {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
