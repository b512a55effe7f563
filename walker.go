package cssprune

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// WalkerOptions configures a Walker. Construct once; the walker never
// mutates it.
type WalkerOptions struct {
	// Rules supplies directory exclusions and the extension sets. When nil,
	// Extensions acts as an explicit allow-list instead.
	Rules *FilterRules

	// Extensions is the allow-list (without dots) used when Rules is nil.
	// Empty means every regular file is included.
	Extensions []string

	// Includes are optional doublestar patterns, relative to the root. When
	// set, a file must additionally match at least one of them.
	Includes []string

	Execution ExecutionOptions
}

// Walker recursively enumerates files under a root directory, applying
// exclusion and inclusion filters, and optionally loads file contents.
// Files under a .gitignore'd path are skipped when the root carries a
// .gitignore; absence of one degrades gracefully.
type Walker struct {
	root string
	opts WalkerOptions

	gitIgnore     *ignore.GitIgnore
	gitIgnoreOnce sync.Once
}

// NewWalker creates a walker rooted at root.
func NewWalker(root string, opts WalkerOptions) *Walker {
	return &Walker{root: root, opts: opts}
}

// Walk returns the paths of all regular files under the root that pass the
// walker's filters. Directories whose name matches an exclusion are pruned
// whole; unreadable directories are skipped silently.
func (w *Walker) Walk() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != w.root && w.excludeDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if w.includePath(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// WalkWithContent walks sequentially and loads each file's contents. Files
// that cannot be read as text are silently skipped so partial corpora never
// abort a scan.
func (w *Walker) WalkWithContent() ([]FileContent, error) {
	files, err := w.Walk()
	if err != nil {
		return nil, err
	}
	var results []FileContent
	for _, file := range files {
		if fc, ok := readFileText(file); ok {
			results = append(results, fc)
		}
	}
	return results, nil
}

// WalkWithContentParallel is WalkWithContent with file reads distributed
// across the worker pool. The snapshot is sorted by path after the batch
// drains, so it contains exactly the same set of files as the sequential
// variant regardless of thread count.
func (w *Walker) WalkWithContentParallel() ([]FileContent, error) {
	files, err := w.Walk()
	if err != nil {
		return nil, err
	}
	pool := NewPool(w.opts.Execution)
	results, err := FlatMap(pool, "reading files", files, func(path string) ([]FileContent, error) {
		if fc, ok := readFileText(path); ok {
			return []FileContent{fc}, nil
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func (w *Walker) excludeDir(name string) bool {
	if w.opts.Rules == nil {
		return false
	}
	return w.opts.Rules.ShouldExcludeDir(name)
}

func (w *Walker) includePath(path string) bool {
	if !w.extensionAllowed(path) {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if len(w.opts.Includes) > 0 && !w.matchesInclude(rel) {
		return false
	}
	if gi := w.loadGitIgnore(); gi != nil && gi.MatchesPath(rel) {
		return false
	}
	return true
}

func (w *Walker) extensionAllowed(path string) bool {
	if w.opts.Rules != nil {
		return w.opts.Rules.ShouldIncludeFile(path)
	}
	if len(w.opts.Extensions) == 0 {
		return true
	}
	ext := fileExtension(path)
	for _, allowed := range w.opts.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (w *Walker) matchesInclude(rel string) bool {
	for _, pattern := range w.opts.Includes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// loadGitIgnore compiles the root's .gitignore once. A missing or unreadable
// file just disables this filter layer.
func (w *Walker) loadGitIgnore() *ignore.GitIgnore {
	w.gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(filepath.Join(w.root, ".gitignore"))
		if err != nil {
			return
		}
		w.gitIgnore = gi
	})
	return w.gitIgnore
}

// readFileText loads a file as UTF-8 text. I/O errors and invalid encodings
// report ok=false rather than failing the walk.
func readFileText(path string) (FileContent, bool) {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return FileContent{}, false
	}
	return FileContent{Path: path, Content: string(data)}, true
}
