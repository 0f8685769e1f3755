// Package dedup decides whether an extracted listing is already recorded.
// The comparison baseline is a snapshot of the sheet taken once per run, not
// re-read per candidate; candidates accepted earlier in the same run form a
// second comparison set so two portals cannot both sneak the same posting in.
package dedup

import "jobsheet-engine/internal/domain"

const (
	colTitle   = 0
	colCompany = 1
)

// Oracle holds the read-only snapshot for one ingestion run.
type Oracle struct {
	snapshot [][]string
}

// NewOracle wraps a snapshot of raw sheet rows, header included.
func NewOracle(snapshot [][]string) *Oracle {
	return &Oracle{snapshot: snapshot}
}

// IsDuplicate reports whether candidate's (title, company) key already exists
// in the in-run batch or in the persisted snapshot. The batch is checked
// first, in insertion order; the snapshot scan skips the header row. Exact
// case-sensitive equality only.
func (o *Oracle) IsDuplicate(candidate domain.JobListing, batch []domain.JobListing) bool {
	for _, accepted := range batch {
		if accepted.SameJob(candidate.Title, candidate.Company) {
			return true
		}
	}
	for i, row := range o.snapshot {
		if i == 0 {
			continue // header
		}
		if len(row) <= colCompany {
			continue
		}
		if candidate.SameJob(row[colTitle], row[colCompany]) {
			return true
		}
	}
	return false
}
