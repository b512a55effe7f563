package cssprune

// ClassRecord is a single CSS class selector declaration at a specific file
// and line. Records are deduplicated by (Name, File); Line is the first-seen
// occurrence.
type ClassRecord struct {
	Name string `json:"name"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// ClassUsage pairs a class declaration with its usage verdict.
type ClassUsage struct {
	Class    ClassRecord `json:"class"`
	IsUnused bool        `json:"is_unused"`
}

// UnusedReport is the result of a full unused-class analysis.
// TotalClasses always equals len(UnusedClasses) + len(UsedClasses), and every
// class appears in exactly one ByFile bucket, keyed by its originating file.
type UnusedReport struct {
	TotalClasses  int                     `json:"total_classes"`
	UnusedClasses []ClassRecord           `json:"unused_classes"`
	UsedClasses   []ClassRecord           `json:"used_classes"`
	ByFile        map[string][]ClassUsage `json:"by_file"`
}

// UnusedPercentage returns the share of analyzed classes that are unused.
func (r *UnusedReport) UnusedPercentage() float64 {
	if r.TotalClasses == 0 {
		return 0
	}
	return float64(len(r.UnusedClasses)) / float64(r.TotalClasses) * 100
}

// ScanResult buckets the files containing a search word into stylesheet and
// non-stylesheet files. IsCSSOnly holds iff at least one stylesheet matched
// and no other file did.
type ScanResult struct {
	CSSFiles   []string `json:"css_files"`
	OtherFiles []string `json:"other_files"`
	IsCSSOnly  bool     `json:"is_css_only"`
}

// Found reports whether the word appeared in any file at all.
func (r *ScanResult) Found() bool {
	return len(r.CSSFiles) > 0 || len(r.OtherFiles) > 0
}

// Match is a single hit of a named pattern on one line of content.
type Match struct {
	PatternName string
	Text        string
	Line        int // 1-based
	Column      int // 0-based byte offset of the capture within the line
}

// FileContent is one file in a walk snapshot. Snapshots are immutable once
// produced and shared read-only across all parallel scan tasks.
type FileContent struct {
	Path    string
	Content string
}

// DynamicPattern is an inferred family of class names sharing a literal
// prefix and suffix around a variable middle segment, e.g. type-fire and
// type-water yielding prefix "type-". Built transiently during one report
// generation; never persisted.
type DynamicPattern struct {
	Prefix          string
	Suffix          string
	Pattern         string // display form, "prefix*suffix"
	MatchingClasses map[string]struct{}
}

// Covers reports whether the pattern was inferred from the given class name.
func (p DynamicPattern) Covers(name string) bool {
	_, ok := p.MatchingClasses[name]
	return ok
}
