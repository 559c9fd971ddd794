package classcombo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/classcombo/internal/classset"
)

// WriteMarkdown writes the analysis result as a Markdown report
func WriteMarkdown(w io.Writer, result *AnalyzeResult, opts OutputOptions) error {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = classset.SortByEntries
	}

	formatPath := opts.FormatPath
	if formatPath == nil {
		formatPath = func(path string) string { return path }
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Repeated Class Combinations")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "| Metric | Count |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| Files scanned | %d |\n", result.Summary.FilesScanned)
	fmt.Fprintf(bw, "| Files skipped | %d |\n", result.Summary.FilesSkipped)
	fmt.Fprintf(bw, "| Distinct combinations | %d |\n", result.Summary.CombinationsFound)
	fmt.Fprintf(bw, "| Repeated combinations | %d |\n", result.Summary.Combinations)
	fmt.Fprintf(bw, "| Repeated occurrences | %d |\n", result.Summary.Occurrences)

	for i, entry := range classset.SortEntries(result.Combinations.Pairs(), sortBy) {
		fmt.Fprintln(bw, "")
		fmt.Fprintf(bw, "## %d. %s (%d)\n", i+1, markdownClasses(entry.Set), entry.Count())
		fmt.Fprintln(bw, "")
		for _, loc := range entry.Locations {
			fmt.Fprintf(bw, "- `%s:%d`\n", formatPath(loc.File), loc.Line)
		}
	}

	return bw.Flush()
}

// markdownClasses renders each token as inline code
func markdownClasses(set classset.ClassSet) string {
	tokens := set.Tokens()
	for i, token := range tokens {
		tokens[i] = "`" + token + "`"
	}
	return strings.Join(tokens, " ")
}
