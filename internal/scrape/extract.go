package scrape

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsheet-engine/internal/domain"
	"jobsheet-engine/internal/skill"
)

// Selectors is the structural predicate for one portal: where to find the
// listing containers on its page and the fields inside each container.
// PaySalary is the only optional field.
type Selectors struct {
	Listing     string
	Title       string
	Company     string
	Location    string
	Description string
	PostDate    string
	PaySalary   string
}

// ExtractionError marks a single listing container that was missing a
// required field node. The listing is dropped; the page is not.
type ExtractionError struct {
	Field string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("listing missing required field %q", e.Field)
}

// Extract walks every listing container in doc and builds a JobListing from
// each, annotating it against profile. Containers missing a required field
// are skipped with a warning and counted in skipped; one bad container never
// aborts the rest of the page.
func Extract(doc *goquery.Document, sel Selectors, profile domain.SkillProfile) (listings []domain.JobListing, skipped int) {
	doc.Find(sel.Listing).Each(func(i int, node *goquery.Selection) {
		l, err := extractOne(node, sel, profile)
		if err != nil {
			log.Printf("[extract] skipping listing %d: %v", i, err)
			skipped++
			return
		}
		listings = append(listings, l)
	})
	return listings, skipped
}

func extractOne(node *goquery.Selection, sel Selectors, profile domain.SkillProfile) (domain.JobListing, error) {
	var l domain.JobListing
	required := []struct {
		name     string
		selector string
		dst      *string
	}{
		{"title", sel.Title, &l.Title},
		{"company", sel.Company, &l.Company},
		{"location", sel.Location, &l.Location},
		{"description", sel.Description, &l.Description},
		{"post_date", sel.PostDate, &l.PostDate},
	}

	for _, f := range required {
		found := node.Find(f.selector).First()
		if found.Length() == 0 {
			return domain.JobListing{}, &ExtractionError{Field: f.name}
		}
		*f.dst = strings.TrimSpace(found.Text())
	}
	if l.Title == "" {
		return domain.JobListing{}, &ExtractionError{Field: "title"}
	}
	if l.Company == "" {
		return domain.JobListing{}, &ExtractionError{Field: "company"}
	}

	l.PaySalary = domain.PayUnknown
	if sel.PaySalary != "" {
		if pay := node.Find(sel.PaySalary).First(); pay.Length() > 0 {
			l.PaySalary = strings.TrimSpace(pay.Text())
		}
	}

	// The raw description, internal commas and all, feeds the matcher.
	l.MatchedSkills, l.UnmatchedSkills = skill.Match(l.Description, profile)

	return l, nil
}
