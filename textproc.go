package cssprune

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Processor applies named regular-expression patterns to text content line
// by line and answers word-containment queries. Register patterns up front
// with AddPattern; a Processor is safe for concurrent use afterwards.
type Processor struct {
	patterns []namedPattern
}

type namedPattern struct {
	name string
	re   *regexp.Regexp
}

// NewProcessor creates a Processor with no registered patterns.
func NewProcessor() *Processor {
	return &Processor{}
}

// AddPattern registers a named pattern. The expression must contain a
// capture group; group 1 is what ProcessContent reports. An invalid
// expression is a construction error, not something deferred to scan time.
func (p *Processor) AddPattern(name, expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	p.patterns = append(p.patterns, namedPattern{name: name, re: re})
	return nil
}

// ProcessContent applies every registered pattern to each line of content
// and returns all capture-group matches with 1-based line numbers. Lines
// that are blank or start with // or /* after trimming are skipped. This is
// a line-level heuristic: bodies of multi-line comments are only suppressed
// when their lines happen to start with a comment marker.
func (p *Processor) ProcessContent(content string) []Match {
	var matches []Match
	for lineIdx, line := range strings.Split(content, "\n") {
		if isIgnoredLine(line) {
			continue
		}
		for _, np := range p.patterns {
			for _, loc := range np.re.FindAllStringSubmatchIndex(line, -1) {
				if len(loc) < 4 || loc[2] < 0 {
					continue
				}
				matches = append(matches, Match{
					PatternName: np.name,
					Text:        line[loc[2]:loc[3]],
					Line:        lineIdx + 1,
					Column:      loc[2],
				})
			}
		}
	}
	return matches
}

func isIgnoredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}

// FindExactWords reports whether word occurs in content as a standalone
// token. Content is split on every character that is not alphanumeric, '_'
// or '-'; word must equal one resulting token exactly. This is word-boundary
// search over an identifier-like alphabet, so "btn" is not found inside
// "btn-primary" or "my-btn-class".
func (p *Processor) FindExactWords(content, word string) bool {
	for _, token := range strings.FieldsFunc(content, isWordBreak) {
		if token == word {
			return true
		}
	}
	return false
}

func isWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-'
}

// isPlainWord reports whether every character of word belongs to the
// identifier-like alphabet FindExactWords splits on. Words outside it can
// never match a token and fall back to substring containment.
func isPlainWord(word string) bool {
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// DetectDynamicPatterns infers families of class names that look assembled
// from a variable middle segment. Names are grouped by a separator-derived
// key: the substring up to and including the first '-' or '_', plus the
// segment after the last separator when a second, later separator exists.
// Each group with at least two members yields a DynamicPattern carrying the
// longest common prefix and suffix of its members, provided the prefix is at
// least two characters. Single-member groups and shorter prefixes are too
// noisy to treat as templates.
func (p *Processor) DetectDynamicPatterns(names []string) []DynamicPattern {
	groups := make(map[string][]string)
	for _, name := range names {
		key, ok := patternKey(name)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], name)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var patterns []DynamicPattern
	for _, key := range keys {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		prefix := commonPrefix(members)
		if len(prefix) < 2 {
			continue
		}
		suffix := commonSuffix(members)
		matching := make(map[string]struct{}, len(members))
		for _, m := range members {
			matching[m] = struct{}{}
		}
		patterns = append(patterns, DynamicPattern{
			Prefix:          prefix,
			Suffix:          suffix,
			Pattern:         prefix + "*" + suffix,
			MatchingClasses: matching,
		})
	}
	return patterns
}

// patternKey derives the grouping key for dynamic pattern inference.
// Returns false for names without any separator.
func patternKey(name string) (string, bool) {
	first := strings.IndexAny(name, "-_")
	if first < 0 {
		return "", false
	}
	key := name[:first+1]
	if last := strings.LastIndexAny(name, "-_"); last > first {
		key += "|" + name[last+1:]
	}
	return key, true
}

func commonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		n := 0
		for n < len(prefix) && n < len(name) && prefix[n] == name[n] {
			n++
		}
		prefix = prefix[:n]
		if prefix == "" {
			break
		}
	}
	return prefix
}

func commonSuffix(names []string) string {
	suffix := names[0]
	for _, name := range names[1:] {
		n := 0
		for n < len(suffix) && n < len(name) && suffix[len(suffix)-1-n] == name[len(name)-1-n] {
			n++
		}
		suffix = suffix[len(suffix)-n:]
		if suffix == "" {
			break
		}
	}
	return suffix
}

// FindPatternUsage reports whether content reconstructs a class name from
// the pattern's prefix and suffix in any of the dynamic forms source code
// tends to use. Deliberately high-recall: one hit anywhere marks every class
// the pattern covers as used, which keeps false positives out of the unused
// report at the cost of missing some genuinely unused dynamic names.
func (p *Processor) FindPatternUsage(content string, pattern DynamicPattern) bool {
	return newPatternProbe(pattern).matches(content)
}

// patternProbe holds the compiled usage forms for one DynamicPattern so the
// detector can test many files without recompiling.
type patternProbe struct {
	res []*regexp.Regexp
}

func newPatternProbe(dp DynamicPattern) patternProbe {
	pre := regexp.QuoteMeta(dp.Prefix)
	suf := regexp.QuoteMeta(dp.Suffix)

	forms := []string{
		// template literal interpolation: type-${kind}
		pre + `\$\{[^}]+\}` + suf,
		// brace placeholder: type-{} or type-{kind}
		pre + `\{[^{}]*\}` + suf,
		// backtick template string containing the prefix and suffix
		"`" + pre + "[^`]*" + suf + "`",
		// quoted variable interpolation: "type-$kind"
		`["']` + pre + `\$[A-Za-z_][A-Za-z0-9_]*` + suf + `["']`,
		// string concatenation: "type-" + kind
		`["']` + pre + `["']\s*\+\s*[A-Za-z_$][A-Za-z0-9_$]*`,
	}
	if suf != "" {
		// string concatenation with both ends: "pre-" + kind + "-post"
		forms = append(forms, `["']`+pre+`["']\s*\+\s*[A-Za-z_$][A-Za-z0-9_$]*\s*\+\s*["']`+suf+`["']`)
	}

	probe := patternProbe{res: make([]*regexp.Regexp, 0, len(forms))}
	for _, form := range forms {
		// QuoteMeta guarantees the assembled expressions compile.
		probe.res = append(probe.res, regexp.MustCompile(form))
	}
	return probe
}

func (pp patternProbe) matches(content string) bool {
	for _, re := range pp.res {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}
