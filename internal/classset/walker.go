package classset

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/juju/errors"
	"golang.org/x/sync/errgroup"
)

// WalkOptions configures directory traversal
type WalkOptions struct {
	Extensions []string // File extensions to parse, case-sensitive (default: [".html"])
	Jobs       int      // Root entries walked concurrently (default: 1, sequential)

	// Skip excludes additional paths (gitignore, exclude globs). Hidden
	// directories are always skipped and never reach it.
	Skip func(path string, isDir bool) bool

	// OnFile is called before each file is parsed. It may be called
	// concurrently when Jobs > 1.
	OnFile func(path string)
}

// WalkStats tracks traversal statistics
type WalkStats struct {
	DirsScanned  int // Directories listed, root included
	FilesScanned int // Files parsed
	FilesSkipped int // Files with a matching extension rejected by Skip
}

func (s WalkStats) add(other WalkStats) WalkStats {
	return WalkStats{
		DirsScanned:  s.DirsScanned + other.DirsScanned,
		FilesScanned: s.FilesScanned + other.FilesScanned,
		FilesSkipped: s.FilesSkipped + other.FilesSkipped,
	}
}

// DefaultExtensions lists the file extensions parsed when none are configured
var DefaultExtensions = []string{".html"}

type entryKind int

const (
	kindOther entryKind = iota
	kindDir
	kindFile
)

type walker struct {
	opts WalkOptions
}

// Walk folds the class sets of every matching file under root into one map.
//
// Directories are visited depth-first in name order and results are merged in
// that order, so repeated runs over an unchanged tree produce identical maps,
// with or without Jobs. Directories whose name starts with "." are not
// entered. Symlinks to files are followed; symlinks to directories are not.
// The first I/O error aborts the walk. The result is not filtered; see
// Significant.
func Walk(root string, opts WalkOptions) (Entries, WalkStats, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	w := &walker{opts: opts}
	return w.walkDir(root, opts.Jobs)
}

// walkDir merges the results of every entry of dir. With jobs > 1 the entries
// are visited concurrently; results are still merged in listing order.
func (w *walker) walkDir(dir string, jobs int) (Entries, WalkStats, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return Entries{}, WalkStats{}, errors.Annotatef(err, "read directory %s", dir)
	}

	parts := make([]Entries, len(dirEntries))
	stats := make([]WalkStats, len(dirEntries))

	visit := func(i int) error {
		part, partStats, err := w.visit(dir, dirEntries[i])
		if err != nil {
			return err
		}
		parts[i], stats[i] = part, partStats
		return nil
	}

	if jobs > 1 {
		var g errgroup.Group
		g.SetLimit(jobs)
		for i := range dirEntries {
			g.Go(func() error { return visit(i) })
		}
		if err := g.Wait(); err != nil {
			return Entries{}, WalkStats{}, err
		}
	} else {
		for i := range dirEntries {
			if err := visit(i); err != nil {
				return Entries{}, WalkStats{}, err
			}
		}
	}

	total := WalkStats{DirsScanned: 1}
	for _, s := range stats {
		total = total.add(s)
	}

	return MergeAll(parts...), total, nil
}

// visit handles one directory entry
func (w *walker) visit(dir string, d fs.DirEntry) (Entries, WalkStats, error) {
	name := d.Name()
	path := filepath.Join(dir, name)

	kind, err := kindOf(path, d)
	if err != nil {
		return Entries{}, WalkStats{}, err
	}

	switch kind {
	case kindDir:
		if isHidden(name) || w.skip(path, true) {
			return Entries{}, WalkStats{}, nil
		}
		return w.walkDir(path, 1)

	case kindFile:
		if !w.matchesExtension(name) {
			return Entries{}, WalkStats{}, nil
		}
		if w.skip(path, false) {
			return Entries{}, WalkStats{FilesSkipped: 1}, nil
		}
		if w.opts.OnFile != nil {
			w.opts.OnFile(path)
		}
		entries, err := ExtractFile(path)
		if err != nil {
			return Entries{}, WalkStats{}, err
		}
		return entries, WalkStats{FilesScanned: 1}, nil
	}

	return Entries{}, WalkStats{}, nil
}

func (w *walker) skip(path string, isDir bool) bool {
	return w.opts.Skip != nil && w.opts.Skip(path, isDir)
}

func (w *walker) matchesExtension(name string) bool {
	ext := Extension(name)
	return ext != "" && slices.Contains(w.opts.Extensions, ext)
}

// kindOf classifies an entry, resolving symlinks to files
func kindOf(path string, d fs.DirEntry) (entryKind, error) {
	mode := d.Type()

	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return kindOther, errors.Annotatef(err, "stat %s", path)
		}
		if info.Mode().IsRegular() {
			return kindFile, nil
		}
		// Symlinked directories are not followed
		return kindOther, nil
	}

	switch {
	case mode.IsDir():
		return kindDir, nil
	case mode.IsRegular():
		return kindFile, nil
	default:
		return kindOther, nil
	}
}

// isHidden reports whether a directory name starts with "."
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Extension returns the extension of a file name including the dot.
// Only the first leading dot belongs to the name, so ".html" has no extension
// while ".page.html" and "..html" have ".html".
func Extension(name string) string {
	trimmed := strings.TrimPrefix(name, ".")
	if !strings.Contains(trimmed, ".") {
		return ""
	}
	return filepath.Ext(trimmed)
}
