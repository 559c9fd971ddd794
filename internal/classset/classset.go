// Package classset aggregates CSS class combinations found in HTML documents.
//
// A ClassSet is the normalized, order-independent set of tokens of one class
// attribute. Entries maps each ClassSet to the code locations where it occurs
// and is combined with Merge, which never mutates its inputs.
package classset

import (
	"encoding/json"
	"sort"
	"strings"
)

// keySeparator joins tokens into a canonical key. Tokens are split on
// whitespace, so they can never contain it.
const keySeparator = " "

// ClassSet is an immutable set of CSS class tokens.
// Two sets are equal when they hold the same tokens, regardless of the order or
// repetition they were written with. The zero value is the empty set.
type ClassSet struct {
	tokens []string // sorted, unique
}

// ParseClassAttr normalizes a class attribute value into a ClassSet.
// Leading/trailing whitespace is trimmed and internal runs of whitespace act as a
// single separator, so "a b", "b a" and " a  b a " produce the same set.
func ParseClassAttr(value string) ClassSet {
	return NewClassSet(strings.Fields(value)...)
}

// NewClassSet builds a set from tokens. Empty tokens are dropped and tokens
// containing whitespace are split.
func NewClassSet(tokens ...string) ClassSet {
	var fields []string
	for _, token := range tokens {
		fields = append(fields, strings.Fields(token)...)
	}
	if len(fields) == 0 {
		return ClassSet{}
	}

	sort.Strings(fields)

	// Deduplicate in place
	unique := fields[:1]
	for _, f := range fields[1:] {
		if f != unique[len(unique)-1] {
			unique = append(unique, f)
		}
	}

	return ClassSet{tokens: unique}
}

// Key returns the canonical representation used to identify the set
func (s ClassSet) Key() string {
	return strings.Join(s.tokens, keySeparator)
}

// Len returns the number of distinct tokens
func (s ClassSet) Len() int {
	return len(s.tokens)
}

// IsEmpty reports whether the set has no tokens
func (s ClassSet) IsEmpty() bool {
	return len(s.tokens) == 0
}

// Tokens returns a copy of the tokens in sorted order
func (s ClassSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Contains reports whether token is a member of the set
func (s ClassSet) Contains(token string) bool {
	i := sort.SearchStrings(s.tokens, token)
	return i < len(s.tokens) && s.tokens[i] == token
}

// Equal reports whether both sets have exactly the same members
func (s ClassSet) Equal(other ClassSet) bool {
	if len(s.tokens) != len(other.tokens) {
		return false
	}
	for i := range s.tokens {
		if s.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

// String renders the tokens as a comma-delimited list
func (s ClassSet) String() string {
	return strings.Join(s.tokens, ",")
}

// MarshalJSON encodes the set as a sorted array of tokens
func (s ClassSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tokens())
}

// UnmarshalJSON decodes an array of tokens, normalizing it into a set
func (s *ClassSet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	*s = NewClassSet(tokens...)
	return nil
}
