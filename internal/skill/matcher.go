// Package skill annotates job descriptions against the operator's skill
// profile. Matching is deliberately naive: the description is split on
// commas, each token is trimmed, and a token counts as matched only when it
// equals a profile entry exactly (case-sensitive). Repeated tokens are kept;
// there is no case folding or stemming.
package skill

import (
	"strings"

	"jobsheet-engine/internal/domain"
)

// Match splits description on commas and partitions the trimmed tokens into
// those present in the profile and those not. Both slices keep the tokens in
// order of first appearance in the description.
func Match(description string, profile domain.SkillProfile) (matched, unmatched []string) {
	for _, tok := range strings.Split(description, ",") {
		tok = strings.TrimSpace(tok)
		if profile.Contains(tok) {
			matched = append(matched, tok)
		} else {
			unmatched = append(unmatched, tok)
		}
	}
	return matched, unmatched
}
