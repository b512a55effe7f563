package cssprune

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Reporter renders analysis results as human-readable text.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines whether color output is appropriate.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// CI environments that support color
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSummary outputs the report totals.
func (r *Reporter) PrintSummary(report *UnusedReport) {
	fmt.Fprintln(r.w, RenderStyle(StyleHeader, "UNUSED CSS CLASSES REPORT", r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("=", 50))
	fmt.Fprintf(r.w, "Total classes analyzed: %d\n", report.TotalClasses)
	fmt.Fprintf(r.w, "Unused classes: %s\n",
		RenderStyle(StyleUnused, strconv.Itoa(len(report.UnusedClasses)), r.useColors))
	fmt.Fprintf(r.w, "Used classes: %s\n",
		RenderStyle(StyleUsed, strconv.Itoa(len(report.UsedClasses)), r.useColors))
	if report.TotalClasses > 0 {
		fmt.Fprintf(r.w, "Unused percentage: %.1f%%\n", report.UnusedPercentage())
	}
}

// PrintPreview outputs the summary plus the first limit unused classes.
// This is the default CLI rendering.
func (r *Reporter) PrintPreview(report *UnusedReport, limit int) {
	r.PrintSummary(report)
	if len(report.UnusedClasses) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleHeader, fmt.Sprintf("UNUSED CLASSES (first %d):", limit), r.useColors))
	for i, class := range report.UnusedClasses {
		if i >= limit {
			break
		}
		fmt.Fprintf(r.w, "  .%s in %s (line %d)\n", class.Name, class.File, class.Line)
	}
	if remaining := len(report.UnusedClasses) - limit; remaining > 0 {
		fmt.Fprintf(r.w, "  ... and %d more\n", remaining)
		fmt.Fprintln(r.w, RenderStyle(StyleHint, "\nUse --detailed for the full list or --by-file for a file breakdown", r.useColors))
	}
}

// PrintDetailed outputs the summary and every unused class grouped by file.
func (r *Reporter) PrintDetailed(report *UnusedReport) {
	r.PrintSummary(report)
	if len(report.UnusedClasses) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleUnused, "UNUSED CLASSES:", r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", 30))

	for _, file := range sortedFiles(report.ByFile) {
		var unused []ClassUsage
		for _, usage := range report.ByFile[file] {
			if usage.IsUnused {
				unused = append(unused, usage)
			}
		}
		if len(unused) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleHeader, file+":", r.useColors))
		for _, usage := range unused {
			fmt.Fprintf(r.w, "   .%s (line %d)\n", usage.Class.Name, usage.Class.Line)
		}
	}
	fmt.Fprintln(r.w, RenderStyle(StyleHint, "\nTip: review these classes and consider removing them.", r.useColors))
}

// PrintByFile outputs the summary and a per-file breakdown table.
func (r *Reporter) PrintByFile(report *UnusedReport) {
	r.PrintSummary(report)
	if len(report.ByFile) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleHeader, "BY FILE BREAKDOWN:", r.useColors))

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"File", "Total", "Unused", "Used"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	files := sortedFiles(report.ByFile)
	for _, file := range files {
		usages := report.ByFile[file]
		unused := 0
		for _, usage := range usages {
			if usage.IsUnused {
				unused++
			}
		}
		table.Append([]string{
			file,
			strconv.Itoa(len(usages)),
			strconv.Itoa(unused),
			strconv.Itoa(len(usages) - unused),
		})
	}
	table.Render()

	for _, file := range files {
		var names []string
		for _, usage := range report.ByFile[file] {
			if usage.IsUnused {
				names = append(names, fmt.Sprintf(".%s (line %d)", usage.Class.Name, usage.Class.Line))
			}
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleHeader, file, r.useColors))
		for _, name := range names {
			fmt.Fprintf(r.w, "    %s\n", RenderStyle(StyleUnused, name, r.useColors))
		}
	}
}

// PrintScanResult outputs the word-search result with its css/other
// bucketing and a one-line conclusion.
func (r *Reporter) PrintScanResult(word string, result *ScanResult) {
	fmt.Fprintf(r.w, "Search results for word: %q\n", word)
	fmt.Fprintln(r.w, strings.Repeat("=", 50))

	if len(result.CSSFiles) > 0 {
		fmt.Fprintln(r.w, "Found in CSS/SCSS files:")
		for _, file := range result.CSSFiles {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleUsed, file, r.useColors))
		}
	}
	if len(result.OtherFiles) > 0 {
		fmt.Fprintln(r.w, "Found in other files:")
		for _, file := range result.OtherFiles {
			fmt.Fprintf(r.w, "  %s\n", file)
		}
	}

	switch {
	case result.IsCSSOnly:
		fmt.Fprintf(r.w, "\n%s\n",
			RenderStyle(StyleUsed, fmt.Sprintf("%q appears ONLY in CSS/SCSS files.", word), r.useColors))
		fmt.Fprintln(r.w, "This might be extraneous and safe to remove.")
	case !result.Found():
		fmt.Fprintf(r.w, "\n%s\n",
			RenderStyle(StyleUnused, fmt.Sprintf("Word %q not found in any files.", word), r.useColors))
	default:
		fmt.Fprintf(r.w, "\n%s\n",
			RenderStyle(StyleWarn, fmt.Sprintf("Word %q appears in non-CSS files too.", word), r.useColors))
	}
}

func sortedFiles(byFile map[string][]ClassUsage) []string {
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}
