package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobsheet-engine/internal/pipeline"
)

func TestSummaryHealthyRun(t *testing.T) {
	s := Summary(pipeline.Report{Accepted: 4, Duplicates: 2, ExtractionErrors: 1}, nil)
	assert.Equal(t, "accepted=4 duplicates=2 extraction_errors=1", s)
}

func TestSummaryNamesFailedPortals(t *testing.T) {
	rep := pipeline.Report{
		PortalErrors: []pipeline.PortalError{
			{Portal: "Indeed", Err: errors.New("503")},
			{Portal: "ZipRecruiter", Err: errors.New("timeout")},
		},
	}
	s := Summary(rep, nil)
	assert.Contains(t, s, "portal_errors=Indeed,ZipRecruiter")
}

func TestSummaryFailedRun(t *testing.T) {
	s := Summary(pipeline.Report{Accepted: 2}, errors.New("append quota"))
	assert.Contains(t, s, "run FAILED: append quota")
	assert.Contains(t, s, "accepted=2")
}
