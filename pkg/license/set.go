package license

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Set collects resolved licenses across a run.
type Set struct {
	items map[string]struct{}
}

func NewSet() *Set {
	return &Set{
		items: map[string]struct{}{},
	}
}

func (s *Set) Add(lic string) {
	s.items[lic] = struct{}{}
}

func (s *Set) Len() int {
	return len(s.items)
}

// Sorted returns the unique licenses in lexicographic order.
func (s *Set) Sorted() []string {
	keys := maps.Keys(s.items)
	slices.Sort(keys)
	return keys
}
