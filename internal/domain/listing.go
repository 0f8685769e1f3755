package domain

import "strings"

// Sentinel cell values used when a listing has nothing to report in a column.
const (
	NoMatchedSkills   = "No matching skills"
	NoUnmatchedSkills = "No unmatched skills"
	PayUnknown        = "N/A"
)

// JobListing is one posting extracted from a portal page. Values are set at
// extraction time and never mutated afterwards.
type JobListing struct {
	Title           string
	Company         string
	Location        string
	Description     string
	PostDate        string // opaque display string, not parsed
	MatchedSkills   []string
	UnmatchedSkills []string
	PaySalary       string
}

// SameJob reports whether this listing and the given title/company pair refer
// to the same posting. Identity is title+company only, exact and
// case-sensitive; location, description and date are deliberately excluded.
func (l JobListing) SameJob(title, company string) bool {
	return l.Title == title && l.Company == company
}

// Header is the fixed first row of the sheet. Row output must line up with it
// column for column.
func Header() []string {
	return []string{
		"Job Title",
		"Company Name",
		"Location",
		"Job Description",
		"Post Date",
		"Matched Skills",
		"Unmatched Skills",
		"Pay/Salary",
	}
}

// Row serializes the listing in sheet column order. Empty skill sequences
// render as their sentinel strings here, not in the matcher.
func (l JobListing) Row() []string {
	matched := strings.Join(l.MatchedSkills, ", ")
	if len(l.MatchedSkills) == 0 {
		matched = NoMatchedSkills
	}
	unmatched := strings.Join(l.UnmatchedSkills, ", ")
	if len(l.UnmatchedSkills) == 0 {
		unmatched = NoUnmatchedSkills
	}
	pay := l.PaySalary
	if pay == "" {
		pay = PayUnknown
	}
	return []string{
		l.Title,
		l.Company,
		l.Location,
		l.Description,
		l.PostDate,
		matched,
		unmatched,
		pay,
	}
}

// SkillProfile is the operator's ordered list of canonical skill names,
// fixed for the duration of a run.
type SkillProfile []string

// Contains reports exact, case-sensitive membership.
func (p SkillProfile) Contains(s string) bool {
	for _, skill := range p {
		if skill == s {
			return true
		}
	}
	return false
}
