// Package notify renders each run's IngestionReport somewhere a human will
// see it. Notification failures are the notifier's problem, never the run's.
package notify

import (
	"fmt"
	"log"
	"strings"

	"jobsheet-engine/internal/pipeline"
)

// Notifier receives the outcome of every run, failed runs included.
type Notifier interface {
	Notify(rep pipeline.Report, runErr error) error
}

// LogNotifier writes the report to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(rep pipeline.Report, runErr error) error {
	log.Printf("[notify] %s", Summary(rep, runErr))
	return nil
}

// Summary renders a one-line human-readable report.
func Summary(rep pipeline.Report, runErr error) string {
	var b strings.Builder
	if runErr != nil {
		fmt.Fprintf(&b, "run FAILED: %v — ", runErr)
	}
	fmt.Fprintf(&b, "accepted=%d duplicates=%d extraction_errors=%d",
		rep.Accepted, rep.Duplicates, rep.ExtractionErrors)
	if len(rep.PortalErrors) > 0 {
		var names []string
		for _, pe := range rep.PortalErrors {
			names = append(names, pe.Portal)
		}
		fmt.Fprintf(&b, " portal_errors=%s", strings.Join(names, ","))
	}
	return b.String()
}
