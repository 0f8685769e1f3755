package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobsheet-engine/internal/domain"
)

func snapshot(rows ...[]string) [][]string {
	all := [][]string{{"Job Title", "Company Name", "Location", "Job Description", "Post Date", "Matched Skills", "Unmatched Skills", "Pay/Salary"}}
	return append(all, rows...)
}

func TestIsDuplicateAgainstSnapshot(t *testing.T) {
	o := NewOracle(snapshot(
		[]string{"Data Engineer", "Acme", "NYC", "SQL", "yesterday", "SQL", "", "N/A"},
	))

	// Same key, completely different location/description/date.
	dup := domain.JobListing{Title: "Data Engineer", Company: "Acme", Location: "Remote", Description: "totally different"}
	assert.True(t, o.IsDuplicate(dup, nil))

	assert.False(t, o.IsDuplicate(domain.JobListing{Title: "Data Engineer", Company: "Initech"}, nil))
	assert.False(t, o.IsDuplicate(domain.JobListing{Title: "data engineer", Company: "Acme"}, nil), "key is case-sensitive")
}

func TestIsDuplicateSkipsHeaderRow(t *testing.T) {
	o := NewOracle(snapshot())

	// A listing that happens to collide with the header text is not a dup.
	l := domain.JobListing{Title: "Job Title", Company: "Company Name"}
	assert.False(t, o.IsDuplicate(l, nil))
}

func TestIsDuplicateChecksInRunBatchFirst(t *testing.T) {
	o := NewOracle(snapshot())

	batch := []domain.JobListing{
		{Title: "Data Engineer", Company: "Acme"},
	}
	assert.True(t, o.IsDuplicate(domain.JobListing{Title: "Data Engineer", Company: "Acme"}, batch))
	assert.False(t, o.IsDuplicate(domain.JobListing{Title: "Data Engineer", Company: "Acme"}, nil))
}

func TestIsDuplicateEmptySnapshot(t *testing.T) {
	o := NewOracle(nil)

	assert.False(t, o.IsDuplicate(domain.JobListing{Title: "X", Company: "Y"}, nil))
}

func TestIsDuplicateIgnoresShortRows(t *testing.T) {
	o := NewOracle(snapshot(
		[]string{"Data Engineer"}, // truncated row, no company column
	))

	assert.False(t, o.IsDuplicate(domain.JobListing{Title: "Data Engineer", Company: "Acme"}, nil))
}
