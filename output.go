package classcombo

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/classcombo/internal/classset"
)

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputText lists every repeated combination with its locations (default)
	OutputText OutputFormat = "text"
	// OutputSummary shows scan statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows combinations followed by scan statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// OutputOptions controls how a result is rendered
type OutputOptions struct {
	SortBy     classset.SortOrder
	UseColors  bool
	FormatPath func(string) string // Rewrites file paths before printing; nil keeps them
}

// DetermineOutputFormat selects the output format from the format flag.
// An empty flag selects OutputText; unknown names are rejected.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch formatFlag {
	case "", "text":
		return OutputText, nil
	case "summary":
		return OutputSummary, nil
	case "full":
		return OutputFull, nil
	case "json":
		return OutputJSON, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	default:
		return "", fmt.Errorf("invalid output format %q (choose from text, summary, full, json, markdown)", formatFlag)
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// WriteOutput writes the analysis result in the specified format
func WriteOutput(w io.Writer, result *AnalyzeResult, format OutputFormat, opts OutputOptions) error {
	switch format {
	case OutputText:
		reporter := classset.NewReporter(w, opts.UseColors, opts.SortBy, opts.FormatPath)
		reporter.PrintEntries(result.Combinations)
		reporter.PrintSummary(result.Summary)

	case OutputSummary:
		reporter := classset.NewReporter(w, opts.UseColors, opts.SortBy, opts.FormatPath)
		reporter.PrintStatistics(result.Summary)

	case OutputFull:
		reporter := classset.NewReporter(w, opts.UseColors, opts.SortBy, opts.FormatPath)
		reporter.PrintEntries(result.Combinations)
		reporter.PrintSummary(result.Summary)
		reporter.PrintStatistics(result.Summary)

	case OutputJSON:
		if err := WriteJSON(w, result, opts); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result, opts); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	return nil
}
