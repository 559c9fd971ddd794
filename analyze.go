package classcombo

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/juju/errors"
	"github.com/yacobolo/classcombo/internal/classset"
)

// Config holds analysis configuration
type Config struct {
	Root             string    // Directory to scan
	Extensions       []string  // File extensions to parse, case-sensitive (default: [".html"])
	Exclude          []string  // Doublestar patterns relative to Root (e.g. "vendor/**")
	RespectGitignore bool      // Skip paths matched by Root/.gitignore
	MinClasses       int       // Minimum classes per combination (default: 2)
	MinOccurrences   int       // Minimum occurrences per combination (default: 2)
	Jobs             int       // Top-level entries scanned concurrently (default: 1)
	Verbose          bool      // Enable progress logging
	Log              io.Writer // Destination of progress logging (default: os.Stderr)
}

// AnalyzeResult contains the repeated class combinations and scan statistics
type AnalyzeResult struct {
	Combinations classset.Entries // Combinations kept by the significance filter
	Summary      classset.Summary
}

// Analyze is the main entry point: it validates the root, walks it and keeps
// the significant class combinations.
//
// A missing root fails with an error satisfying errors.IsNotFound; a root that
// is not a directory fails with errors.IsNotValid. Any I/O error during the
// walk aborts the analysis.
func Analyze(config Config) (*AnalyzeResult, error) {
	// 1. Preconditions
	if err := CheckRoot(config.Root); err != nil {
		return nil, err
	}

	log := newProgressLog(config)
	log.printf("Scanning %s\n", config.Root)

	// 2. Skip rules
	rules, err := newSkipRules(config.Root, config.Exclude, config.RespectGitignore)
	if err != nil {
		return nil, err
	}

	// 3. Walk and fold every HTML file
	entries, stats, err := classset.Walk(config.Root, classset.WalkOptions{
		Extensions: config.Extensions,
		Jobs:       config.Jobs,
		Skip:       rules.skipFunc(),
		OnFile: func(path string) {
			log.printf("Parsing %s\n", path)
		},
	})
	if err != nil {
		return nil, errors.Annotate(err, "scan failed")
	}

	// 4. Significance filter, applied once to the whole tree
	thresholds := classset.DefaultThresholds()
	if config.MinClasses > 0 {
		thresholds.MinClasses = config.MinClasses
	}
	if config.MinOccurrences > 0 {
		thresholds.MinOccurrences = config.MinOccurrences
	}
	kept := classset.Significant(entries, thresholds)

	result := &AnalyzeResult{
		Combinations: kept,
		Summary: classset.Summary{
			DirsScanned:       stats.DirsScanned,
			FilesScanned:      stats.FilesScanned,
			FilesSkipped:      stats.FilesSkipped,
			CombinationsFound: entries.Len(),
			Combinations:      kept.Len(),
			Occurrences:       kept.Occurrences(),
		},
	}

	log.printf("Parsed %d files (%d skipped), %d distinct combinations, %d repeated\n",
		stats.FilesScanned, stats.FilesSkipped, entries.Len(), kept.Len())

	return result, nil
}

// CheckRoot verifies that root exists, is a directory and can be listed
func CheckRoot(root string) error {
	if root == "" {
		return errors.NotValidf("empty root path")
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return errors.NotFoundf("path %s", root)
	}
	if err != nil {
		return errors.Annotatef(err, "stat %s", root)
	}
	if !info.IsDir() {
		return errors.NotValidf("path %s (not a directory)", root)
	}

	dir, err := os.Open(root)
	if err != nil {
		return errors.Annotatef(err, "path %s is not readable", root)
	}
	if _, err := dir.Readdirnames(1); err != nil && err != io.EOF {
		dir.Close()
		return errors.Annotatef(err, "path %s is not readable", root)
	}
	return dir.Close()
}

// progressLog prints verbose progress lines; safe for concurrent use
type progressLog struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

func newProgressLog(config Config) *progressLog {
	w := config.Log
	if w == nil {
		w = os.Stderr
	}
	return &progressLog{w: w, enabled: config.Verbose}
}

func (l *progressLog) printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
