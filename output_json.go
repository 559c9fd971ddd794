package classcombo

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/classcombo/internal/classset"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version      string            `json:"version"`
	Timestamp    string            `json:"timestamp"`
	SortBy       string            `json:"sort_by"`
	Summary      JSONSummary       `json:"summary"`
	Combinations []JSONCombination `json:"combinations"`
}

// JSONSummary contains high-level scan counts
type JSONSummary struct {
	Combinations  int `json:"combinations"`
	Occurrences   int `json:"occurrences"`
	DistinctFound int `json:"distinct_found"`
	FilesScanned  int `json:"files_scanned"`
	FilesSkipped  int `json:"files_skipped"`
	DirsScanned   int `json:"dirs_scanned"`
}

// JSONCombination represents one repeated class combination
type JSONCombination struct {
	Classes   []string       `json:"classes"`
	Count     int            `json:"count"`
	Locations []JSONLocation `json:"locations"`
}

// JSONLocation is a single occurrence of a combination
type JSONLocation struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// WriteJSON writes the analysis result as JSON
func WriteJSON(w io.Writer, result *AnalyzeResult, opts OutputOptions) error {
	output := buildJSONOutput(result, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts AnalyzeResult to JSONOutput
func buildJSONOutput(result *AnalyzeResult, opts OutputOptions) JSONOutput {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = classset.SortByEntries
	}

	formatPath := opts.FormatPath
	if formatPath == nil {
		formatPath = func(path string) string { return path }
	}

	pairs := classset.SortEntries(result.Combinations.Pairs(), sortBy)
	combinations := make([]JSONCombination, len(pairs))
	for i, entry := range pairs {
		locations := make([]JSONLocation, len(entry.Locations))
		for j, loc := range entry.Locations {
			locations[j] = JSONLocation{
				File: formatPath(loc.File),
				Line: loc.Line,
			}
		}
		combinations[i] = JSONCombination{
			Classes:   entry.Set.Tokens(),
			Count:     entry.Count(),
			Locations: locations,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		SortBy:    string(sortBy),
		Summary: JSONSummary{
			Combinations:  result.Summary.Combinations,
			Occurrences:   result.Summary.Occurrences,
			DistinctFound: result.Summary.CombinationsFound,
			FilesScanned:  result.Summary.FilesScanned,
			FilesSkipped:  result.Summary.FilesSkipped,
			DirsScanned:   result.Summary.DirsScanned,
		},
		Combinations: combinations,
	}
}
