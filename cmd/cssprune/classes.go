package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

// previewLimit bounds the default report rendering.
const previewLimit = 10

var classesCmd = &cobra.Command{
	Use:   "classes [directory]",
	Short: "Analyze all CSS classes and report unused ones",
	Long: `Walk the directory, extract every class selector from its stylesheets,
and verify each one against the whole file set: first by exact word match,
then against inferred dynamic-name patterns for whatever remains.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return runClasses(cmd, dir)
	},
}

func init() {
	f := classesCmd.Flags()
	f.Bool("by-file", false, "Show a per-file breakdown")
	f.Bool("detailed", false, "Show the full unused-class report")
	f.String("output-format", "text", "Output format: text|json")
	f.StringSlice("include", nil, "Glob patterns narrowing the walk (e.g. 'src/**/*.ts')")
	f.Bool("lexer", false, "Tokenize stylesheets instead of line matching (handles minified CSS)")
	f.Bool("strict", false, "Exit 1 when unused classes are found (CI mode)")
	f.StringSlice("exclude-dir", nil, "Directory names to exclude")
	f.StringSlice("ext", nil, "Source file extensions to scan")
	f.StringSlice("css-ext", nil, "Stylesheet extensions")
}

func runClasses(cmd *cobra.Command, dir string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configureLogger(verbose)

	rules := buildRules()
	mode := cssprune.ExtractRegex
	if getBoolWithFallback("lexer", "scan.lexer", false) {
		mode = cssprune.ExtractLexer
	}

	detector := cssprune.NewDetector(dir, cssprune.DetectorOptions{
		Rules:     &rules,
		Includes:  getStringsWithFallback("include", "scan.include"),
		Extract:   mode,
		Execution: buildExecutionOptions(),
	})

	report, err := detector.GenerateReport()
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := getStringWithFallback("output-format", "output-format", "text")

	switch {
	case format == "json":
		if err := cssprune.WriteReportJSON(os.Stdout, report); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	case quiet:
		// exit code only
	default:
		reporter := cssprune.NewReporter(os.Stdout, useColors())
		byFile := getBoolWithFallback("by-file", "classes.by-file", false)
		detailed := getBoolWithFallback("detailed", "classes.detailed", false)
		switch {
		case detailed:
			reporter.PrintDetailed(report)
		case byFile:
			reporter.PrintByFile(report)
		default:
			reporter.PrintPreview(report, previewLimit)
		}
	}

	if getBoolWithFallback("strict", "strict", false) && len(report.UnusedClasses) > 0 {
		os.Exit(1)
	}
	return nil
}

func useColors() bool {
	return cssprune.ShouldUseColors(getBoolWithFallback("color", "color", false))
}
