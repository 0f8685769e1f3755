package sheets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsheet-engine/internal/domain"
)

func TestRowsWithHeader(t *testing.T) {
	listings := []domain.JobListing{
		{Title: "Data Engineer", Company: "Acme", Description: "SQL", MatchedSkills: []string{"SQL"}, UnmatchedSkills: []string{"Excel"}, PaySalary: "$1"},
	}

	values := Rows(listings, true)
	require.Len(t, values, 2)
	assert.Equal(t, "Job Title", values[0][0])
	assert.Equal(t, "Pay/Salary", values[0][7])
	assert.Equal(t, "Data Engineer", values[1][0])
	assert.Equal(t, "Acme", values[1][1])
}

func TestRowsWithoutHeader(t *testing.T) {
	values := Rows([]domain.JobListing{{Title: "X", Company: "Y"}}, false)
	require.Len(t, values, 1)
	assert.Equal(t, "X", values[0][0])
	assert.Equal(t, domain.NoMatchedSkills, values[0][5])
	assert.Equal(t, domain.NoUnmatchedSkills, values[0][6])
	assert.Equal(t, domain.PayUnknown, values[0][7])
}

func TestStoreUnavailableErrorUnwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &StoreUnavailableError{Op: "append", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "append")
}
