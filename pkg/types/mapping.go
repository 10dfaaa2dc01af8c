package types

import "sort"

// Entry pairs a content-relative source with its destination.
// Destinations may be absolute or start with ~.
type Entry struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// Mapping is an ordered list of entries. Links and templates share this shape.
type Mapping []Entry

// NewMapping builds a Mapping from a decoded map, ordered by source
func NewMapping(m map[string]string) Mapping {
	return NewOrderedMapping(m, nil)
}

// NewOrderedMapping builds a Mapping whose entries follow order. Keys of m
// missing from order come last, sorted by source; names in order that are
// not in m are ignored.
func NewOrderedMapping(m map[string]string, order []string) Mapping {
	mapping := make(Mapping, 0, len(m))
	for _, src := range OrderKeys(m, order) {
		mapping = append(mapping, Entry{Source: src, Destination: m[src]})
	}
	return mapping
}

// OrderKeys returns the keys of m following order, then the remaining keys sorted
func OrderKeys[V any](m map[string]V, order []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Sources returns the source of every entry, in order
func (m Mapping) Sources() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Source
	}
	return out
}

// Repository is a git repository to clone or update
type Repository struct {
	Name string
	URL  string
	Path string
}
