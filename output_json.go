package cssprune

import (
	"encoding/json"
	"io"
)

// WriteReportJSON writes the report in its wire form: total_classes,
// unused_classes, used_classes, and by_file as a mapping from file paths to
// arrays of {class: {name, file, line}, is_unused}. Consumers on the other
// side of a request/response boundary rely on these exact names.
func WriteReportJSON(w io.Writer, report *UnusedReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteScanResultJSON writes a word-search result as {css_files,
// other_files, is_css_only}.
func WriteScanResultJSON(w io.Writer, result *ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
