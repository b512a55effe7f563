package cssprune

import (
	"sort"
	"strings"
)

// UsageScanner determines which files in a snapshot contain a target word
// and whether every match is confined to stylesheet files.
type UsageScanner struct {
	rules *FilterRules
	proc  *Processor
}

// NewUsageScanner creates a scanner. A nil rules falls back to the default
// stylesheet extensions for bucketing.
func NewUsageScanner(rules *FilterRules) *UsageScanner {
	return &UsageScanner{rules: rules, proc: NewProcessor()}
}

// Scan checks every file for the word and buckets the matches into
// stylesheet and other files. Words made entirely of identifier-like
// characters are matched with exact word boundaries; anything else uses
// plain substring containment, since boundary splitting could never match
// it. A file either contains the word or it does not; occurrence counts are
// not tracked.
func (s *UsageScanner) Scan(word string, files []FileContent) ScanResult {
	plain := isPlainWord(word)

	cssFiles := []string{}
	otherFiles := []string{}
	for _, fc := range files {
		var found bool
		if plain {
			found = s.proc.FindExactWords(fc.Content, word)
		} else {
			found = strings.Contains(fc.Content, word)
		}
		if !found {
			continue
		}
		if s.isCSSFile(fc.Path) {
			cssFiles = append(cssFiles, fc.Path)
		} else {
			otherFiles = append(otherFiles, fc.Path)
		}
	}
	sort.Strings(cssFiles)
	sort.Strings(otherFiles)

	return ScanResult{
		CSSFiles:   cssFiles,
		OtherFiles: otherFiles,
		IsCSSOnly:  len(cssFiles) > 0 && len(otherFiles) == 0,
	}
}

func (s *UsageScanner) isCSSFile(path string) bool {
	if s.rules != nil {
		return s.rules.IsCSSFile(path)
	}
	ext := fileExtension(path)
	return ext == "css" || ext == "scss"
}
