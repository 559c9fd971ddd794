package classcombo

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/juju/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// skipRules excludes paths from the walk in addition to hidden directories
// and non-HTML files
type skipRules struct {
	root      string
	exclude   []string          // Doublestar patterns, slash-separated, relative to root
	gitignore *ignore.GitIgnore // nil when disabled or missing
}

// newSkipRules validates exclude patterns and loads root/.gitignore if requested
func newSkipRules(root string, exclude []string, useGitignore bool) (*skipRules, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.NotValidf("exclude pattern %q", pattern)
		}
	}

	rules := &skipRules{
		root:    root,
		exclude: exclude,
	}
	if useGitignore {
		rules.gitignore = loadGitIgnore(root)
	}

	return rules, nil
}

// loadGitIgnore compiles root/.gitignore
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// skipFunc returns the walker callback, or nil when no rule is active
func (r *skipRules) skipFunc() func(path string, isDir bool) bool {
	if len(r.exclude) == 0 && r.gitignore == nil {
		return nil
	}
	return r.shouldSkip
}

// shouldSkip determines if a path should be excluded from scanning
//
// Two-layer filtering:
// 1. Exclude globs (explicit configuration)
// 2. Gitignore check (only when enabled)
func (r *skipRules) shouldSkip(path string, isDir bool) bool {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	// Layer 1: exclude globs
	for _, pattern := range r.exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}

	// Layer 2: .gitignore
	if r.gitignore != nil {
		if r.gitignore.MatchesPath(rel) {
			return true
		}
		// Directory-only patterns ("build/") need the trailing slash
		if isDir && r.gitignore.MatchesPath(rel+"/") {
			return true
		}
	}

	return false
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
