package classset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root from a map of slash-separated relative paths
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestWalkRecursiveAggregation(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":     `<div class="x y"></div>`,
		"sub/b.html": "\n<div class=\"y x\"></div>",
	})

	entries, stats, err := Walk(root, WalkOptions{})
	require.NoError(t, err)

	kept := Significant(entries, DefaultThresholds())
	require.Equal(t, 1, kept.Len())

	locs, ok := kept.Get(ParseClassAttr("x y"))
	require.True(t, ok)
	assert.Equal(t, []CodeLocation{
		{File: filepath.Join(root, "a.html"), Line: 1},
		{File: filepath.Join(root, "sub", "b.html"), Line: 2},
	}, locs)

	assert.Equal(t, WalkStats{DirsScanned: 2, FilesScanned: 2}, stats)
}

func TestWalkExclusions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":         `<div class="x y"></div>`,
		".cache/index.html":  `<div class="x y"></div><div class="x y"></div>`,
		"sub/.git/head.html": `<div class="x y"></div>`,
		"notes.txt":          `<div class="x y"></div>`,
		"page.HTML":          `<div class="x y"></div>`,
		"page.htm":           `<div class="x y"></div>`,
		".html":              `<div class="x y"></div>`,
	})

	entries, stats, err := Walk(root, WalkOptions{})
	require.NoError(t, err)

	locs, ok := entries.Get(ParseClassAttr("x y"))
	require.True(t, ok)
	assert.Equal(t, []CodeLocation{{File: filepath.Join(root, "index.html"), Line: 1}}, locs)
	assert.Equal(t, 1, stats.FilesScanned)

	// A single occurrence is not significant
	assert.Equal(t, 0, Significant(entries, DefaultThresholds()).Len())
}

func TestWalkHiddenFileIsScanned(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".draft.html": `<div class="x y"></div>`,
	})

	entries, _, err := Walk(root, WalkOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, entries.Len())
}

func TestWalkCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":  `<div class="x y"></div>`,
		"b.htm":   `<div class="x y"></div>`,
		"c.xhtml": `<div class="x y"></div>`,
	})

	entries, stats, err := Walk(root, WalkOptions{Extensions: []string{".htm", ".xhtml"}})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.FilesScanned)

	locs, _ := entries.Get(ParseClassAttr("x y"))
	assert.Equal(t, []CodeLocation{
		{File: filepath.Join(root, "b.htm"), Line: 1},
		{File: filepath.Join(root, "c.xhtml"), Line: 1},
	}, locs)
}

func TestWalkSkip(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep/a.html":   `<div class="x y"></div>`,
		"vendor/b.html": `<div class="x y"></div>`,
		"c.gen.html":    `<div class="x y"></div>`,
	})

	var parsed []string
	entries, stats, err := Walk(root, WalkOptions{
		Skip: func(path string, isDir bool) bool {
			if isDir {
				return filepath.Base(path) == "vendor"
			}
			return strings.HasSuffix(path, ".gen.html")
		},
		OnFile: func(path string) {
			parsed = append(parsed, path)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "keep", "a.html")}, parsed)
	assert.Equal(t, 1, entries.Occurrences())
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestWalkDeterministic(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	for _, dir := range []string{"a", "b", "c", "a/deep", "b/deeper/still"} {
		for _, name := range []string{"one.html", "two.html"} {
			files[dir+"/"+name] = "<div class=\"card card--flat\">\n<p class=\"text muted\"></p>\n</div>\n<span class=\"muted text\"></span>"
		}
	}
	files["root.html"] = `<div class="card--flat card"></div>`
	writeTree(t, root, files)

	first, firstStats, err := Walk(root, WalkOptions{})
	require.NoError(t, err)
	second, _, err := Walk(root, WalkOptions{})
	require.NoError(t, err)
	parallel, parallelStats, err := Walk(root, WalkOptions{Jobs: 4})
	require.NoError(t, err)

	assert.Equal(t, first.Pairs(), second.Pairs())
	assert.Equal(t, first.Pairs(), parallel.Pairs())
	assert.Equal(t, firstStats, parallelStats)
	assert.Equal(t, 11, firstStats.FilesScanned)

	locs, _ := first.Get(ParseClassAttr("text muted"))
	assert.Len(t, locs, 20)
}

func TestWalkMissingRoot(t *testing.T) {
	_, _, err := Walk(filepath.Join(t.TempDir(), "nope"), WalkOptions{})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestWalkUnreadableFileAborts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":        `<div class="x y"></div>`,
		"locked/b.html": `<div class="x y"></div>`,
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	_, _, err := Walk(root, WalkOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestWalkSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, map[string]string{
		"shared.html":     `<div class="x y"></div>`,
		"dir/nested.html": `<div class="x y"></div>`,
	})
	writeTree(t, root, map[string]string{
		"a.html": `<div class="x y"></div>`,
	})

	if err := os.Symlink(filepath.Join(outside, "shared.html"), filepath.Join(root, "link.html")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "dir"), filepath.Join(root, "linkdir")))

	entries, stats, err := Walk(root, WalkOptions{})
	require.NoError(t, err)

	locs, _ := entries.Get(ParseClassAttr("x y"))
	assert.Equal(t, []CodeLocation{
		{File: filepath.Join(root, "a.html"), Line: 1},
		{File: filepath.Join(root, "link.html"), Line: 1},
	}, locs)
	assert.Equal(t, 2, stats.FilesScanned)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "index.html", want: ".html"},
		{name: "index.HTML", want: ".HTML"},
		{name: ".page.html", want: ".html"},
		{name: ".html", want: ""},
		{name: "..html", want: ".html"},
		{name: "...html", want: ".html"},
		{name: "README", want: ""},
		{name: "archive.tar.gz", want: ".gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.name))
		})
	}
}
