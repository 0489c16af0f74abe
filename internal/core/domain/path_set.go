package domain

import (
	"maps"
	"path/filepath"
	"slices"
)

// PathSet is an unordered set of cleaned file system paths.
type PathSet struct {
	items map[string]struct{}
}

// NewPathSet returns a set containing paths.
func NewPathSet(paths ...string) PathSet {
	s := PathSet{items: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts p. Adding a path twice is a no-op.
func (s PathSet) Add(p string) {
	s.items[filepath.Clean(p)] = struct{}{}
}

// Has reports whether p is a member of the set.
func (s PathSet) Has(p string) bool {
	_, ok := s.items[filepath.Clean(p)]
	return ok
}

// Len returns the number of paths in the set.
func (s PathSet) Len() int {
	return len(s.items)
}

// Sorted returns the members in lexical order.
func (s PathSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.items))
}
