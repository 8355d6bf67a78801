// Package search orders client matches for the map search box.
package search

import (
	"fmt"
	"sort"
	"strings"

	"clientmap-api/internal/models"
)

// Tiers, best first. A record only occupies the best tier it earns.
const (
	TierNamePrefix = iota + 1
	TierLegalNamePrefix
	TierSubstring
	noMatch
)

// NormalizeTerm trims the term and rejects empty input.
func NormalizeTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", fmt.Errorf("search: empty search term: %w", models.ErrInvalidQuery)
	}
	return term, nil
}

// Tier returns the relevance tier of c for an already lower-cased term.
func Tier(c models.Client, lowerTerm string) int {
	name := strings.ToLower(c.Name)
	legal := strings.ToLower(c.LegalName)

	switch {
	case strings.HasPrefix(name, lowerTerm):
		return TierNamePrefix
	case strings.HasPrefix(legal, lowerTerm):
		return TierLegalNamePrefix
	case strings.Contains(name, lowerTerm), strings.Contains(legal, lowerTerm):
		return TierSubstring
	default:
		return noMatch
	}
}

type ranked struct {
	client models.Client
	tier   int
	key    string
}

// Rank keeps the mappable records whose name or legal name contains term and orders them by
// tier, then by name (case-insensitive), then by id.
func Rank(records []models.Client, term string) ([]models.Client, error) {
	term, err := NormalizeTerm(term)
	if err != nil {
		return nil, err
	}
	lowerTerm := strings.ToLower(term)

	candidates := make([]ranked, 0, len(records))
	for _, c := range records {
		if !c.Mappable() {
			continue
		}
		tier := Tier(c, lowerTerm)
		if tier == noMatch {
			continue
		}
		candidates = append(candidates, ranked{client: c, tier: tier, key: strings.ToLower(c.Name)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.key != b.key {
			return a.key < b.key
		}
		return a.client.ID < b.client.ID
	})

	out := make([]models.Client, len(candidates))
	for i, r := range candidates {
		out[i] = r.client
	}
	return out, nil
}
