package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classcombo.yaml config file",
	Long:  `Create a .classcombo.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# classcombo configuration
# Docs: https://github.com/yacobolo/classcombo

# Shared settings
verbose: false
color: false

# Analysis settings
analyze:
  sort-by: entries         # entries | classes
  output-format: text      # text | summary | full | json | markdown
  extensions:
    - ".html"
  exclude:
    - "node_modules/**"
  gitignore: false
  min-classes: 2
  min-occurrences: 2
  jobs: 1
  relative: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
