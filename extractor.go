package cssprune

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// classSelectorPattern captures the identifier after a '.' in a selector.
const classSelectorPattern = `\.([a-zA-Z][a-zA-Z0-9_-]*)`

// ExtractMode selects how stylesheets are turned into class records.
type ExtractMode int

const (
	// ExtractRegex applies the class-selector pattern line by line. This is
	// the default and matches what the usage scanner later searches for.
	ExtractRegex ExtractMode = iota
	// ExtractLexer tokenizes stylesheets instead, which copes with minified
	// single-line and escape-heavy files that line patterns handle poorly.
	ExtractLexer
)

// ExtractorOptions configures class extraction.
type ExtractorOptions struct {
	Mode      ExtractMode
	Execution ExecutionOptions
}

// Extractor pulls class selector declarations out of stylesheet contents.
type Extractor struct {
	opts ExtractorOptions
	proc *Processor
}

// NewExtractor creates an extractor. Fails only if the class-selector
// pattern does not compile, which would be a programming error surfaced at
// construction rather than mid-scan.
func NewExtractor(opts ExtractorOptions) (*Extractor, error) {
	proc := NewProcessor()
	if err := proc.AddPattern("css_class", classSelectorPattern); err != nil {
		return nil, err
	}
	return &Extractor{opts: opts, proc: proc}, nil
}

// Extract returns one ClassRecord per distinct (name, file) pair across the
// given stylesheet contents, processed in parallel. The first occurrence of
// a class in a file determines its recorded line. Running Extract twice over
// identical input yields identical output.
func (e *Extractor) Extract(files []FileContent) ([]ClassRecord, error) {
	pool := NewPool(e.opts.Execution)
	records, err := FlatMap(pool, "extracting classes", files, func(fc FileContent) ([]ClassRecord, error) {
		return e.extractFile(fc), nil
	})
	if err != nil {
		return nil, err
	}
	return dedupeClasses(records), nil
}

func (e *Extractor) extractFile(fc FileContent) []ClassRecord {
	if e.opts.Mode == ExtractLexer {
		return e.extractLexer(fc)
	}
	return e.extractRegex(fc)
}

func (e *Extractor) extractRegex(fc FileContent) []ClassRecord {
	var records []ClassRecord
	for _, m := range e.proc.ProcessContent(fc.Content) {
		if m.PatternName != "css_class" || !validClassName(m.Text) {
			continue
		}
		records = append(records, ClassRecord{Name: m.Text, File: fc.Path, Line: m.Line})
	}
	return records
}

// extractLexer walks the CSS token stream looking for a '.' delimiter
// followed by an identifier. Comments come through as single tokens, so
// selectors inside them are never reported; line numbers are tracked by
// counting newlines in consumed tokens.
func (e *Extractor) extractLexer(fc FileContent) []ClassRecord {
	lexer := css.NewLexer(parse.NewInputString(fc.Content))
	line := 1
	prevDot := false

	var records []ClassRecord
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if prevDot && tt == css.IdentToken {
			name := string(text)
			if validClassName(name) {
				records = append(records, ClassRecord{Name: name, File: fc.Path, Line: line})
			}
		}
		prevDot = tt == css.DelimToken && len(text) > 0 && text[0] == '.'
		line += strings.Count(string(text), "\n")
	}
	return records
}

// validClassName rejects selector fragments that are not identifiers:
// single characters and purely numeric candidates.
func validClassName(name string) bool {
	if len(name) < 2 {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

func dedupeClasses(records []ClassRecord) []ClassRecord {
	type key struct{ name, file string }
	seen := make(map[key]struct{}, len(records))
	deduped := records[:0:0]
	for _, rec := range records {
		k := key{rec.Name, rec.File}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, rec)
	}
	return deduped
}
