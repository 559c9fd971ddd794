package classset

// Entries maps class sets to the locations where they occur.
//
// Keys are identified by ClassSet.Key, so set-equal keys always share a single
// entry. Iteration follows first-insertion order. An Entries value is never
// modified after construction: Merge, MergeAll and Filter return new values and
// accessors return copies. The zero value is an empty map.
type Entries struct {
	order []string
	sets  map[string]ClassSet
	locs  map[string][]CodeLocation
}

// Single returns a map holding one class set at one location.
// An empty set yields an empty map.
func Single(set ClassSet, loc CodeLocation) Entries {
	b := newBuilder()
	b.add(set, loc)
	return b.entries()
}

// Merge combines two maps. For every key the result lists the left locations
// followed by the right ones; keys present on one side pass through unchanged.
func Merge(left, right Entries) Entries {
	return MergeAll(left, right)
}

// MergeAll folds Merge over parts from left to right.
// MergeAll(a, b, c) equals Merge(Merge(a, b), c), built without the
// intermediate maps.
func MergeAll(parts ...Entries) Entries {
	b := newBuilder()
	for _, part := range parts {
		b.addEntries(part)
	}
	return b.entries()
}

// Len returns the number of distinct class sets
func (e Entries) Len() int {
	return len(e.order)
}

// Occurrences returns the total number of locations across all class sets
func (e Entries) Occurrences() int {
	total := 0
	for _, key := range e.order {
		total += len(e.locs[key])
	}
	return total
}

// Get returns the locations recorded for set
func (e Entries) Get(set ClassSet) ([]CodeLocation, bool) {
	locs, ok := e.locs[set.Key()]
	if !ok {
		return nil, false
	}
	return copyLocations(locs), true
}

// Sets returns the class sets in insertion order
func (e Entries) Sets() []ClassSet {
	sets := make([]ClassSet, 0, len(e.order))
	for _, key := range e.order {
		sets = append(sets, e.sets[key])
	}
	return sets
}

// Pairs returns every class set with its locations, in insertion order
func (e Entries) Pairs() []Entry {
	pairs := make([]Entry, 0, len(e.order))
	for _, key := range e.order {
		pairs = append(pairs, Entry{
			Set:       e.sets[key],
			Locations: copyLocations(e.locs[key]),
		})
	}
	return pairs
}

// Filter returns the entries for which keep reports true
func (e Entries) Filter(keep func(set ClassSet, locs []CodeLocation) bool) Entries {
	b := newBuilder()
	for _, key := range e.order {
		set, locs := e.sets[key], e.locs[key]
		if keep(set, locs) {
			b.addAll(set, locs)
		}
	}
	return b.entries()
}

// builder accumulates entries before they are frozen into an Entries value.
// It is never shared, so the mutation stays invisible to callers.
type builder struct {
	order []string
	sets  map[string]ClassSet
	locs  map[string][]CodeLocation
}

func newBuilder() *builder {
	return &builder{
		sets: make(map[string]ClassSet),
		locs: make(map[string][]CodeLocation),
	}
}

func (b *builder) add(set ClassSet, loc CodeLocation) {
	b.addAll(set, []CodeLocation{loc})
}

func (b *builder) addAll(set ClassSet, locs []CodeLocation) {
	if set.IsEmpty() {
		return
	}
	key := set.Key()
	if _, exists := b.sets[key]; !exists {
		b.order = append(b.order, key)
		b.sets[key] = set
	}
	b.locs[key] = append(b.locs[key], locs...)
}

func (b *builder) addEntries(e Entries) {
	for _, key := range e.order {
		b.addAll(e.sets[key], e.locs[key])
	}
}

// entries freezes the builder. The builder must not be used afterwards.
func (b *builder) entries() Entries {
	return Entries{
		order: b.order,
		sets:  b.sets,
		locs:  b.locs,
	}
}

func copyLocations(locs []CodeLocation) []CodeLocation {
	out := make([]CodeLocation, len(locs))
	copy(out, locs)
	return out
}
