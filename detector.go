package cssprune

import (
	"log/slog"
)

// DetectorOptions configures a Detector.
type DetectorOptions struct {
	// Rules supplies the traversal filters; nil means DefaultRules.
	Rules *FilterRules

	// Includes optionally narrows the walk to files matching these
	// doublestar patterns (relative to the root).
	Includes []string

	// Extract selects the extraction mode; the zero value is the line
	// pattern.
	Extract ExtractMode

	Execution ExecutionOptions
}

// Detector produces the unused-class report for a directory tree: one walk,
// one extraction pass, then a two-phase usage analysis over the snapshot.
type Detector struct {
	root  string
	rules FilterRules
	opts  DetectorOptions
}

// NewDetector creates a detector rooted at root.
func NewDetector(root string, opts DetectorOptions) *Detector {
	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	return &Detector{root: root, rules: rules, opts: opts}
}

// GenerateReport runs the end-to-end analysis.
//
// Phase 1 scans every class name, in parallel, for exact word matches over
// the entire snapshot; a class whose matches are confined to stylesheet
// files is tentatively unused. That includes classes referenced only from
// another stylesheet (say, an SCSS @extend): stylesheet-to-stylesheet
// references do not count as usage. Phase 2 then checks the residual against the
// inferred dynamic patterns, since pattern probing costs several regexes per
// candidate per file and the residual is small in typical codebases.
func (d *Detector) GenerateReport() (*UnusedReport, error) {
	walker := NewWalker(d.root, WalkerOptions{
		Rules:     &d.rules,
		Includes:  d.opts.Includes,
		Execution: d.opts.Execution,
	})
	snapshot, err := walker.WalkWithContentParallel()
	if err != nil {
		return nil, err
	}

	var stylesheets []FileContent
	for _, fc := range snapshot {
		if d.rules.IsCSSFile(fc.Path) {
			stylesheets = append(stylesheets, fc)
		}
	}
	slog.Debug("walk complete", "files", len(snapshot), "stylesheets", len(stylesheets))

	extractor, err := NewExtractor(ExtractorOptions{Mode: d.opts.Extract, Execution: d.opts.Execution})
	if err != nil {
		return nil, err
	}
	classes, err := extractor.Extract(stylesheets)
	if err != nil {
		return nil, err
	}
	slog.Info("classes extracted", "count", len(classes))

	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.Name
	}
	patterns := NewProcessor().DetectDynamicPatterns(names)
	for _, p := range patterns {
		slog.Debug("dynamic pattern inferred", "pattern", p.Pattern, "classes", len(p.MatchingClasses))
	}

	unusedByName, err := d.analyzeUsage(classes, snapshot, patterns)
	if err != nil {
		return nil, err
	}

	return buildReport(classes, unusedByName), nil
}

// analyzeUsage returns the final unused verdict per (name, file) key.
func (d *Detector) analyzeUsage(classes []ClassRecord, snapshot []FileContent, patterns []DynamicPattern) (map[ClassRecord]bool, error) {
	pool := NewPool(d.opts.Execution)
	scanner := NewUsageScanner(&d.rules)

	usages, err := Process(pool, "checking usage", classes, func(class ClassRecord) (ClassUsage, error) {
		result := scanner.Scan(class.Name, snapshot)
		return ClassUsage{Class: class, IsUnused: result.IsCSSOnly}, nil
	})
	if err != nil {
		return nil, err
	}

	verdicts := make(map[ClassRecord]bool, len(classes))
	var residual []ClassRecord
	for _, usage := range usages {
		verdicts[usage.Class] = usage.IsUnused
		if usage.IsUnused {
			residual = append(residual, usage.Class)
		}
	}
	slog.Info("exact-match pass complete", "used", len(classes)-len(residual), "residual", len(residual))

	if len(residual) == 0 || len(patterns) == 0 {
		return verdicts, nil
	}

	probes := make([]patternProbe, len(patterns))
	for i, p := range patterns {
		probes[i] = newPatternProbe(p)
	}

	rescued, err := Process(pool, "checking dynamic patterns", residual, func(class ClassRecord) (ClassUsage, error) {
		return ClassUsage{Class: class, IsUnused: !usedViaPattern(class, snapshot, patterns, probes)}, nil
	})
	if err != nil {
		return nil, err
	}
	for _, usage := range rescued {
		verdicts[usage.Class] = usage.IsUnused
	}
	slog.Info("dynamic-pattern pass complete")
	return verdicts, nil
}

// usedViaPattern reports whether any pattern covering the class has its
// usage signature somewhere in the snapshot.
func usedViaPattern(class ClassRecord, snapshot []FileContent, patterns []DynamicPattern, probes []patternProbe) bool {
	for i, pattern := range patterns {
		if !pattern.Covers(class.Name) {
			continue
		}
		for _, fc := range snapshot {
			if probes[i].matches(fc.Content) {
				return true
			}
		}
	}
	return false
}

// buildReport aggregates verdicts into the flat lists and the by-file
// buckets, preserving extraction order so output is stable across runs.
func buildReport(classes []ClassRecord, unusedByName map[ClassRecord]bool) *UnusedReport {
	report := &UnusedReport{
		TotalClasses:  len(classes),
		UnusedClasses: []ClassRecord{},
		UsedClasses:   []ClassRecord{},
		ByFile:        make(map[string][]ClassUsage),
	}
	for _, class := range classes {
		unused := unusedByName[class]
		if unused {
			report.UnusedClasses = append(report.UnusedClasses, class)
		} else {
			report.UsedClasses = append(report.UsedClasses, class)
		}
		report.ByFile[class.File] = append(report.ByFile[class.File], ClassUsage{Class: class, IsUnused: unused})
	}
	return report
}
