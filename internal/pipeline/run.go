// Package pipeline orchestrates one ingestion run: snapshot the sheet once,
// fetch and extract every configured portal, dedup the candidates against
// the snapshot plus the run's own accepted batch, then append the survivors
// in a single write.
package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"jobsheet-engine/internal/dedup"
	"jobsheet-engine/internal/domain"
	"jobsheet-engine/internal/scrape"
)

// Gateway is the tabular store boundary the pipeline writes through.
type Gateway interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, listings []domain.JobListing, includeHeader bool) (int, error)
}

// PageSource yields one portal's parsed page.
type PageSource interface {
	Fetch(ctx context.Context) (*goquery.Document, error)
}

// Portal is one configured job board: a name for reporting, a page source,
// and the structural selectors for its markup.
type Portal struct {
	Name      string
	Source    PageSource
	Selectors scrape.Selectors
}

// PortalPage adapts a scrape.Client and a fixed URL into a PageSource.
type PortalPage struct {
	Client *scrape.Client
	URL    string
}

func (p PortalPage) Fetch(ctx context.Context) (*goquery.Document, error) {
	return p.Client.FetchDocument(ctx, p.URL)
}

// PortalError records one portal that could not be fetched or parsed this run.
type PortalError struct {
	Portal string
	Err    error
}

// Report is the outcome of a run. Every run produces one, failed runs
// included; nothing is dropped without trace.
type Report struct {
	Accepted         int
	Duplicates       int
	ExtractionErrors int
	PortalErrors     []PortalError
}

// Pipeline carries the per-process collaborators. Portals and profile arrive
// per run.
type Pipeline struct {
	store         Gateway
	profile       domain.SkillProfile
	portalTimeout time.Duration
}

func New(store Gateway, profile domain.SkillProfile, portalTimeout time.Duration) *Pipeline {
	return &Pipeline{
		store:         store,
		profile:       profile,
		portalTimeout: portalTimeout,
	}
}

// Run executes one ingestion pass over all portals.
//
// A snapshot read failure is fatal before any portal work starts: without a
// dedup baseline a flaky morning would mass-duplicate the sheet. Per-portal
// fetch failures and per-listing extraction failures are counted and the run
// continues. At most one append happens, after all portals are done; an
// append failure loses this run's work and is reported, never retried.
func (p *Pipeline) Run(ctx context.Context, portals []Portal) (Report, error) {
	var report Report

	snapshot, err := p.store.ReadAll(ctx)
	if err != nil {
		log.Printf("[pipeline] snapshot read failed, aborting run: %v", err)
		return report, err
	}
	oracle := dedup.NewOracle(snapshot)

	// batch and report are shared across portal workers; mu serializes the
	// check-then-accept step so two portals cannot both admit the same key.
	var mu sync.Mutex
	var batch []domain.JobListing

	var g errgroup.Group
	for _, portal := range portals {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, p.portalTimeout)
			defer cancel()

			log.Printf("[pipeline] fetching portal %s", portal.Name)
			doc, err := portal.Source.Fetch(fctx)
			if err != nil {
				log.Printf("[pipeline] portal %s failed: %v", portal.Name, err)
				mu.Lock()
				report.PortalErrors = append(report.PortalErrors, PortalError{Portal: portal.Name, Err: err})
				mu.Unlock()
				return nil // one dead portal never blocks the others
			}

			listings, skipped := scrape.Extract(doc, portal.Selectors, p.profile)

			mu.Lock()
			report.ExtractionErrors += skipped
			for _, l := range listings {
				if oracle.IsDuplicate(l, batch) {
					report.Duplicates++
					continue
				}
				batch = append(batch, l)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	report.Accepted = len(batch)
	if len(batch) == 0 {
		log.Printf("[pipeline] nothing new (duplicates=%d extraction_errors=%d portal_errors=%d)",
			report.Duplicates, report.ExtractionErrors, len(report.PortalErrors))
		return report, nil
	}

	cells, err := p.store.Append(ctx, batch, len(snapshot) == 0)
	if err != nil {
		log.Printf("[pipeline] append failed, run lost: %v", err)
		return report, err
	}

	log.Printf("[pipeline] ok accepted=%d duplicates=%d extraction_errors=%d portal_errors=%d cells=%d",
		report.Accepted, report.Duplicates, report.ExtractionErrors, len(report.PortalErrors), cells)
	return report, nil
}
