package service

import (
	"fmt"
	"strconv"
	"strings"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// EncodeShareScores renders ratings as the legacy share-link value: one
// score per catalog principle, comma-joined in catalog order. Unrated
// principles encode as 0. The format round-trips through plain URLs, so
// catalog order must never change (see catalog/principles.go).
func EncodeShareScores(ratings map[string]model.AggregatedRating) string {
	parts := make([]string, 0, len(catalog.Principles()))
	for _, id := range catalog.PrincipleIDs() {
		if rating, ok := ratings[id]; ok {
			parts = append(parts, strconv.Itoa(rating.Score))
		} else {
			parts = append(parts, "0")
		}
	}
	return strings.Join(parts, ",")
}

// DecodeShareScores parses a legacy share-link value back into scores
// keyed by principle id. A 0 decodes to unrated (the id is absent from
// the result), not to a zero score.
func DecodeShareScores(encoded string) (map[string]int, error) {
	ids := catalog.PrincipleIDs()
	parts := strings.Split(encoded, ",")
	if len(parts) != len(ids) {
		return nil, &model.ValidationError{
			Reason: fmt.Sprintf("share link has %d scores, catalog has %d principles", len(parts), len(ids)),
		}
	}
	scores := make(map[string]int)
	for i, part := range parts {
		score, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || score < 0 || score > 5 {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("share link position %d is not a score 0-5", i+1)}
		}
		if score == 0 {
			continue
		}
		scores[ids[i]] = score
	}
	return scores, nil
}
