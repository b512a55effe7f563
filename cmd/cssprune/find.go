package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var findCmd = &cobra.Command{
	Use:   "find <word> [directory]",
	Short: "Find files containing an exact word",
	Long: `Search every scanned file for the word as a standalone token and report
whether it appears only in CSS/SCSS files, a hint the declaration may be
extraneous.`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		return runFind(cmd, args[0], dir)
	},
}

func init() {
	f := findCmd.Flags()
	f.BoolP("all", "a", false, "Show all matches, not just CSS-only ones")
	f.String("output-format", "text", "Output format: text|json")
	f.StringSlice("exclude-dir", nil, "Directory names to exclude")
	f.StringSlice("ext", nil, "Source file extensions to scan")
	f.StringSlice("css-ext", nil, "Stylesheet extensions")
}

func runFind(cmd *cobra.Command, word, dir string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configureLogger(verbose)

	rules := buildRules()
	result, err := cssprune.FindWord(word, dir, &rules, buildExecutionOptions())
	if err != nil {
		return err
	}

	if getStringWithFallback("output-format", "output-format", "text") == "json" {
		return cssprune.WriteScanResultJSON(os.Stdout, result)
	}

	all := getBoolWithFallback("all", "find.all", false)
	switch {
	case all || result.IsCSSOnly:
		cssprune.NewReporter(os.Stdout, useColors()).PrintScanResult(word, result)
	case result.Found():
		fmt.Printf("Word %q found but not CSS-only. Use --all to see details.\n", word)
	default:
		fmt.Printf("Word %q not found in any files.\n", word)
	}
	return nil
}
