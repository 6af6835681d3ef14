package service

import (
	"fmt"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// ApplicablePrinciples returns the ids of catalog principles that apply to
// a section type, preserving catalog order. Principles with an empty
// AppliesTo set are wildcards and always included.
func ApplicablePrinciples(sectionType model.SectionType) []string {
	var ids []string
	for _, p := range catalog.Principles() {
		if p.AppliesToType(sectionType) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// fillNotApplicable merges every catalog principle absent from scores back
// in as an explicit not-applicable entry, then verifies the completeness
// invariant the aggregator depends on: one entry per catalog principle.
func fillNotApplicable(scores map[string]model.ScoreResult) (map[string]model.ScoreResult, error) {
	if scores == nil {
		scores = make(map[string]model.ScoreResult)
	}
	for _, id := range catalog.PrincipleIDs() {
		if _, ok := scores[id]; !ok {
			scores[id] = model.ScoreResult{Score: 0, NotApplicable: true}
		}
	}
	if len(scores) != len(catalog.Principles()) {
		// Only reachable if the oracle returned ids outside the catalog
		// and extraction let them through.
		return nil, fmt.Errorf("score map has %d entries, catalog has %d", len(scores), len(catalog.Principles()))
	}
	return scores, nil
}
