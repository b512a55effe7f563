package cssprune

import (
	"path/filepath"
	"strings"
)

// FilterRules determines which files participate in a scan: directory names
// to exclude, source extensions to include, and stylesheet extensions.
// Construct once and share by reference; the engine never mutates it.
type FilterRules struct {
	ExcludeDirs       []string
	IncludeExtensions []string
	CSSExtensions     []string
}

// DefaultRules returns the rules used when no configuration is supplied.
func DefaultRules() FilterRules {
	return FilterRules{
		ExcludeDirs:       []string{"node_modules", "dist", "build", ".git", ".vscode", ".idea", "target"},
		IncludeExtensions: []string{"html", "js", "jsx", "ts", "tsx", "php"},
		CSSExtensions:     []string{"css", "scss"},
	}
}

// ShouldExcludeDir reports whether a directory component with the given name
// is excluded. Matching is by exact name, not prefix.
func (r *FilterRules) ShouldExcludeDir(name string) bool {
	for _, excluded := range r.ExcludeDirs {
		if name == excluded {
			return true
		}
	}
	return false
}

// ShouldIncludeFile reports whether a file participates in a scan based on
// its extension: a member of the include set or the stylesheet set.
func (r *FilterRules) ShouldIncludeFile(path string) bool {
	ext := fileExtension(path)
	if ext == "" {
		return false
	}
	for _, allowed := range r.IncludeExtensions {
		if ext == allowed {
			return true
		}
	}
	return r.IsCSSFile(path)
}

// IsCSSFile reports whether the path has a configured stylesheet extension.
func (r *FilterRules) IsCSSFile(path string) bool {
	ext := fileExtension(path)
	if ext == "" {
		return false
	}
	for _, cssExt := range r.CSSExtensions {
		if ext == cssExt {
			return true
		}
	}
	return false
}

// fileExtension returns the extension without its leading dot.
func fileExtension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
