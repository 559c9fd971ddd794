package classset

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Reporter prints class combinations in a human-readable format
type Reporter struct {
	w          io.Writer
	useColors  bool
	sortBy     SortOrder
	formatPath func(string) string
}

// NewReporter creates a reporter. formatPath rewrites file paths before they
// are printed; nil prints them unchanged.
func NewReporter(w io.Writer, useColors bool, sortBy SortOrder, formatPath func(string) string) *Reporter {
	if formatPath == nil {
		formatPath = func(path string) string { return path }
	}
	return &Reporter{
		w:          w,
		useColors:  useColors,
		sortBy:     sortBy,
		formatPath: formatPath,
	}
}

// SortEntries returns a copy of pairs in the given order. The sort is stable,
// so ties keep their insertion order.
func SortEntries(pairs []Entry, order SortOrder) []Entry {
	sorted := make([]Entry, len(pairs))
	copy(sorted, pairs)

	switch order {
	case SortByClasses:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Set.Len() > sorted[j].Set.Len()
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Count() > sorted[j].Count()
		})
	}

	return sorted
}

// PrintEntries outputs every class set followed by its locations
func (r *Reporter) PrintEntries(entries Entries) {
	for i, entry := range SortEntries(entries.Pairs(), r.sortBy) {
		if i > 0 {
			fmt.Fprintln(r.w, "")
		}
		r.printEntry(entry)
	}
}

// printEntry formats one class set:
//
//	btn,btn--primary (2)
//	    web/index.html:12
//	    web/about.html:7
func (r *Reporter) printEntry(entry Entry) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleClasses, entry.Set.String(), r.useColors),
		RenderStyle(StyleCount, fmt.Sprintf("(%d)", entry.Count()), r.useColors))

	for _, loc := range entry.Locations {
		fmt.Fprintf(r.w, "    %s:%s\n",
			RenderStyle(StyleFile, r.formatPath(loc.File), r.useColors),
			RenderStyle(StyleLine, strconv.Itoa(loc.Line), r.useColors))
	}
}

// PrintSummary outputs a one-line result summary
func (r *Reporter) PrintSummary(summary Summary) {
	fmt.Fprintln(r.w, "")

	if summary.Combinations == 0 {
		fmt.Fprintf(r.w, "No repeated class combinations found (%s scanned)\n",
			pluralizeCount(summary.FilesScanned, "file", "files"))
		return
	}

	fmt.Fprintf(r.w, "%s repeated (%s) across %s\n",
		pluralizeCount(summary.Combinations, "class combination", "class combinations"),
		pluralizeCount(summary.Occurrences, "occurrence", "occurrences"),
		pluralizeCount(summary.FilesScanned, "scanned file", "scanned files"))
}

// PrintStatistics outputs detailed scan statistics
func (r *Reporter) PrintStatistics(summary Summary) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleClasses, "Class Combination Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------------")

	fmt.Fprintf(r.w, "Directories Scanned:     %d\n", summary.DirsScanned)
	fmt.Fprintf(r.w, "Files Scanned:           %d\n", summary.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:           %d\n", summary.FilesSkipped)
	fmt.Fprintf(r.w, "Distinct Combinations:   %d\n", summary.CombinationsFound)
	fmt.Fprintf(r.w, "Repeated Combinations:   %d\n", summary.Combinations)
	fmt.Fprintf(r.w, "Repeated Occurrences:    %d\n", summary.Occurrences)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
