package classset

import "fmt"

// CodeLocation identifies where a class set occurrence was found
type CodeLocation struct {
	File string `json:"file"` // Path as produced by the walker (root joined with entry names)
	Line int    `json:"line"` // 1-based line of the element's opening "<"
}

// String formats the location as file:line
func (l CodeLocation) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Entry pairs a class set with every location it occurs at
type Entry struct {
	Set       ClassSet
	Locations []CodeLocation
}

// Count returns the number of occurrences of the entry's class set
func (e Entry) Count() int {
	return len(e.Locations)
}

// Thresholds configures the significance filter
type Thresholds struct {
	MinClasses     int // Minimum distinct tokens in a class set (default: 2)
	MinOccurrences int // Minimum locations for a class set (default: 2)
}

// DefaultThresholds keeps combinations of at least two classes seen at least twice
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinClasses:     2,
		MinOccurrences: 2,
	}
}

// SortOrder selects how the reporter orders class set entries
type SortOrder string

const (
	// SortByEntries orders by occurrence count, most frequent first
	SortByEntries SortOrder = "entries"
	// SortByClasses orders by number of class tokens, largest combination first
	SortByClasses SortOrder = "classes"
)

// ParseSortOrder validates a sort order name. An empty name selects SortByEntries.
func ParseSortOrder(name string) (SortOrder, error) {
	switch SortOrder(name) {
	case "", SortByEntries:
		return SortByEntries, nil
	case SortByClasses:
		return SortByClasses, nil
	default:
		return "", fmt.Errorf("invalid sort order %q (choose from %q, %q)", name, SortByEntries, SortByClasses)
	}
}

// Summary holds the counts reported alongside the class combinations
type Summary struct {
	DirsScanned       int // Directories listed, root included
	FilesScanned      int // HTML files parsed
	FilesSkipped      int // HTML files excluded by gitignore or exclude globs
	CombinationsFound int // Distinct class sets before filtering
	Combinations      int // Class sets kept by the significance filter
	Occurrences       int // Locations across the kept class sets
}
