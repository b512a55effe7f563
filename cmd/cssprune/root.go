package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssprune",
	Short: "Find unused CSS classes in a codebase",
	Long: `Scan a directory tree, extract the class selectors declared in its
stylesheets, and report the ones nothing else references. Dynamic names
assembled at runtime (` + "`type-${kind}`" + `) are detected via inferred
prefix/suffix patterns so they do not show up as false positives.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: .cssprune.toml)")
	rootCmd.PersistentFlags().IntP("threads", "t", 0, "Worker threads (0 = all CPUs)")

	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
