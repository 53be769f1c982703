package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tailgen.yaml config file",
	Long:  `Create a .tailgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tailgen.yaml"); err == nil && !force {
			return fmt.Errorf(".tailgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tailgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tailgen.yaml")
		return nil
	},
}

const defaultConfig = `# tailgen configuration
# Docs: https://github.com/aethelur/tailgen

# Shared settings
verbose: false

# Build settings
build:
  paths:
    - "**/*.templ"
    - "**/*.html"
  out: tailgen.css
  minify: false
  tree-shake-keyframes: false
  disable: []              # utility categories to turn off, e.g. [svg, tables]

# Check settings
check:
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
