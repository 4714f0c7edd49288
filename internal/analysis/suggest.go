package analysis

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"tsmls/internal/candidates"
)

// MatchResult pairs a candidate name with its relevance score against some
// query text.
type MatchResult struct {
	Name  string
	Score int
}

// Suggest ranks the candidate set against query and returns at most limit
// results, descending by score. Candidates with nothing in common with the
// query score zero and are excluded. Ties keep the sorted-name order, so
// identical inputs always yield identical output. Nothing is cached; every
// call ranks from scratch.
func Suggest(query string, set candidates.Set, limit int) []MatchResult {
	if limit <= 0 {
		return nil
	}

	var results []MatchResult
	for _, name := range set.Names() {
		score := closeness(query, name)
		if score <= 0 {
			continue
		}
		results = append(results, MatchResult{Name: name, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// closeness scores name against query as the length of the longer string
// minus their edit distance: a strictly closer textual match never scores
// lower, and fully dissimilar strings score zero.
func closeness(query string, name string) int {
	longest := utf8.RuneCountInString(query)
	if n := utf8.RuneCountInString(name); n > longest {
		longest = n
	}
	return longest - levenshtein.ComputeDistance(query, name)
}
