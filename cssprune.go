// Package cssprune finds CSS class selectors that nothing else in a
// codebase references.
//
// The engine walks a directory tree once, takes an immutable (path, content)
// snapshot, extracts class declarations from the stylesheet subset, and then
// verifies usage in two phases: a cheap exact-word pass over every file,
// followed by a dynamic-pattern pass that catches names assembled at runtime
// (`type-${kind}` covering .type-fire, .type-water, ...). All phases run as
// bounded parallel batches; the snapshot is shared read-only across workers.
//
// It is intentionally not a CSS parser: extraction is line-oriented pattern
// matching and usage checks are word-boundary searches, which is what makes
// scanning thousands of mixed-language files practical.
package cssprune

// Analyze walks root and produces the unused-class report. A nil rules uses
// DefaultRules.
func Analyze(root string, rules *FilterRules, opts ExecutionOptions) (*UnusedReport, error) {
	detector := NewDetector(root, DetectorOptions{Rules: rules, Execution: opts})
	return detector.GenerateReport()
}

// FindWord reports which files under root contain word and whether every
// match is confined to stylesheet files. A nil rules uses DefaultRules.
func FindWord(word, root string, rules *FilterRules, opts ExecutionOptions) (*ScanResult, error) {
	defaulted := DefaultRules()
	if rules == nil {
		rules = &defaulted
	}
	walker := NewWalker(root, WalkerOptions{Rules: rules, Execution: opts})
	snapshot, err := walker.WalkWithContentParallel()
	if err != nil {
		return nil, err
	}
	result := NewUsageScanner(rules).Scan(word, snapshot)
	return &result, nil
}
