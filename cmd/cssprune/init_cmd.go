package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssprune.toml config file",
	Long:  `Create a .cssprune.toml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssprune.toml"); err == nil && !force {
			return fmt.Errorf(".cssprune.toml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssprune.toml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssprune.toml")
		return nil
	},
}

const defaultConfig = `# cssprune configuration
# Docs: https://github.com/yacobolo/cssprune

# Shared settings
verbose = false
color = false
threads = 0 # 0 = number of CPUs

[scan]
exclude-dirs = [
  "node_modules",
  "dist",
  "build",
  ".git",
  ".vscode",
  ".idea",
  "target",
]
include-extensions = ["html", "js", "jsx", "ts", "tsx", "php"]
css-extensions = ["css", "scss"]
lexer = false # tokenize stylesheets instead of regex matching

[log]
file = ".cssprune.log"
level = "info"
compress = true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
