// Package candidates sources the set of valid folder names from a directory.
package candidates

import (
	"log"
	"os"
	"sort"
)

// List returns the entry names of the directory at root, sorted. Any listing
// error degrades to an empty result; the caller sees every literal as
// invalid rather than a failed request.
func List(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Printf("candidates: listing %q failed: %v", root, err)
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// Set is a deduplicated set of valid names. Membership is pure string
// equality, with no normalization or case-folding.
type Set map[string]struct{}

// NewSet builds a Set from names.
func NewSet(names []string) Set {
	set := make(Set, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order, for deterministic ranking and
// completion output.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
