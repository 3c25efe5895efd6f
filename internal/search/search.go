// Package search provides fuzzy record lookup for the CLI quick-search
// path. The in-session search command uses the exact matchers in
// internal/match; this package only serves "paq <query>".
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/paqtool/paq/internal/pkg"
)

// Result represents a fuzzy search match.
type Result struct {
	Record         *pkg.Record
	MatchedIndexes []int
	Score          int
}

// recordNames implements fuzzy.Source for a record slice.
type recordNames []*pkg.Record

func (rn recordNames) String(i int) string {
	return rn[i].Name
}

func (rn recordNames) Len() int {
	return len(rn)
}

// Records fuzzy-matches the query against record names.
// Returns results sorted by match score (best first).
func Records(records []*pkg.Record, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, recordNames(records))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Record:         records[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
