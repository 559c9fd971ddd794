package main

import (
	"fmt"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/classcombo"
	"github.com/yacobolo/classcombo/internal/classset"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Report repeated class combinations under a directory",
	Long: `Walk the directory recursively, parse every HTML file and list each class
combination with at least --min-classes classes that occurs at least
--min-occurrences times, together with all of its locations.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0])
	},
}

func init() {
	addAnalyzeFlags(analyzeCmd)
}

// addAnalyzeFlags registers the analysis flags. They live on both the root
// command and `analyze` so that `classcombo <path>` accepts them too.
func addAnalyzeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("sort-by", string(classset.SortByEntries), "Sort order: entries|classes")
	f.String("output-format", "", "Output format: text|summary|full|json|markdown")
	f.StringSlice("ext", classset.DefaultExtensions, "File extensions to parse (case-sensitive)")
	f.StringSlice("exclude", nil, "Glob patterns relative to the scanned directory to skip")
	f.Bool("gitignore", false, "Skip paths ignored by the directory's .gitignore")
	f.Int("min-classes", 2, "Minimum classes in a reported combination")
	f.Int("min-occurrences", 2, "Minimum occurrences of a reported combination")
	f.Int("jobs", 1, "Top-level entries scanned concurrently")
	f.Bool("relative", false, "Print file paths relative to the working directory")
}

// missingPathError reports an analyzed path that does not exist
type missingPathError struct {
	path string
}

func (e *missingPathError) Error() string {
	return "path does not exist: " + e.path
}

// runAnalyze is shared between `classcombo <path>` and `classcombo analyze <path>`.
func runAnalyze(cmd *cobra.Command, path string) error {
	root, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", path, err)
	}

	// Validate output settings before scanning
	sortBy, err := classset.ParseSortOrder(getStringWithFallback("sort-by", "analyze.sort-by", string(classset.SortByEntries)))
	if err != nil {
		return err
	}
	format, err := classcombo.DetermineOutputFormat(getStringWithFallback("output-format", "analyze.output-format", ""))
	if err != nil {
		return err
	}

	config := buildAnalyzeConfig(root)
	config.Log = cmd.ErrOrStderr()

	result, err := classcombo.Analyze(config)
	if errors.IsNotFound(err) {
		return &missingPathError{path: root}
	}
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	opts := classcombo.OutputOptions{
		SortBy:    sortBy,
		UseColors: classcombo.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	}
	if getBoolWithFallback("relative", "analyze.relative", false) {
		opts.FormatPath = classcombo.GetRelativePath
	}

	return classcombo.WriteOutput(cmd.OutOrStdout(), result, format, opts)
}
