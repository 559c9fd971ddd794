package classset

// Significant drops class sets that carry no reuse signal.
// A set is kept only when it has at least t.MinClasses tokens and at least
// t.MinOccurrences locations; both conditions always apply together.
// Thresholds below 1 are treated as 1.
func Significant(e Entries, t Thresholds) Entries {
	minClasses := max(t.MinClasses, 1)
	minOccurrences := max(t.MinOccurrences, 1)

	return e.Filter(func(set ClassSet, locs []CodeLocation) bool {
		return set.Len() >= minClasses && len(locs) >= minOccurrences
	})
}
