package cssprune

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *UnusedReport {
	classes := []ClassRecord{
		{Name: "header", File: "style.css", Line: 1},
		{Name: "footer", File: "style.css", Line: 2},
		{Name: "sidebar", File: "theme.css", Line: 5},
	}
	return buildReport(classes, map[ClassRecord]bool{
		classes[1]: true,
		classes[2]: true,
	})
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintSummary(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Total classes analyzed: 3")
	assert.Contains(t, out, "Unused classes: 2")
	assert.Contains(t, out, "Used classes: 1")
	assert.Contains(t, out, "Unused percentage: 66.7%")
}

func TestPrintSummaryEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintSummary(buildReport(nil, nil))

	out := buf.String()
	assert.Contains(t, out, "Total classes analyzed: 0")
	assert.NotContains(t, out, "Unused percentage")
}

func TestPrintPreviewTruncates(t *testing.T) {
	classes := make([]ClassRecord, 5)
	verdicts := make(map[ClassRecord]bool, 5)
	for i := range classes {
		classes[i] = ClassRecord{Name: "cls-" + strings.Repeat("x", i+1), File: "style.css", Line: i + 1}
		verdicts[classes[i]] = true
	}

	var buf bytes.Buffer
	NewReporter(&buf, false).PrintPreview(buildReport(classes, verdicts), 3)

	out := buf.String()
	assert.Contains(t, out, ".cls-x in style.css (line 1)")
	assert.Contains(t, out, ".cls-xxx in style.css (line 3)")
	assert.NotContains(t, out, ".cls-xxxx in")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintPreviewNoUnused(t *testing.T) {
	classes := []ClassRecord{{Name: "used", File: "style.css", Line: 1}}

	var buf bytes.Buffer
	NewReporter(&buf, false).PrintPreview(buildReport(classes, nil), 10)

	assert.NotContains(t, buf.String(), "UNUSED CLASSES")
}

func TestPrintDetailedGroupsByFile(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintDetailed(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "style.css:")
	assert.Contains(t, out, ".footer (line 2)")
	assert.Contains(t, out, "theme.css:")
	assert.Contains(t, out, ".sidebar (line 5)")
	// Used classes never show up in the detailed listing.
	assert.NotContains(t, out, ".header (line 1)")
	// Files come out in sorted order.
	assert.Less(t, strings.Index(out, "style.css:"), strings.Index(out, "theme.css:"))
}

func TestPrintByFileTable(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintByFile(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "BY FILE BREAKDOWN:")
	assert.Contains(t, out, "style.css")
	assert.Contains(t, out, "theme.css")
	assert.Contains(t, out, ".footer (line 2)")
}

func TestPrintScanResult(t *testing.T) {
	tests := []struct {
		name     string
		result   ScanResult
		expected string
	}{
		{
			name: "css only",
			result: ScanResult{
				CSSFiles:  []string{"style.css"},
				IsCSSOnly: true,
			},
			expected: "might be extraneous",
		},
		{
			name:     "not found",
			result:   ScanResult{},
			expected: "not found in any files",
		},
		{
			name: "mixed usage",
			result: ScanResult{
				CSSFiles:   []string{"style.css"},
				OtherFiles: []string{"app.ts"},
			},
			expected: "appears in non-CSS files too",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).PrintScanResult("btn", &tt.result)
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestSortedFiles(t *testing.T) {
	byFile := map[string][]ClassUsage{
		"z.css": nil,
		"a.css": nil,
		"m.css": nil,
	}
	require.Equal(t, []string{"a.css", "m.css", "z.css"}, sortedFiles(byFile))
}
