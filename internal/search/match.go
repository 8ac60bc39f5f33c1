// Package search implements the job board's search-term matching and the
// client-style faceted filter engine used on the listing page.
package search

import (
	"strings"

	"github.com/jonathan/jobboard/internal/db"
)

// MatchesTerm reports whether term appears case-insensitively in the
// job's title, company or description. The match is a logical OR across
// the three fields.
func MatchesTerm(job *db.Job, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Company), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle)
}

// FilterTerm returns the jobs matching term, preserving input order.
// This is a linear scan over a locally held list, not an indexed search.
func FilterTerm(jobs []db.Job, term string) []db.Job {
	matched := []db.Job{}
	for i := range jobs {
		if MatchesTerm(&jobs[i], term) {
			matched = append(matched, jobs[i])
		}
	}
	return matched
}
