package service

import (
	"sort"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// Aggregate folds per-section results into one rating per principle:
// the maximum applicable non-zero score wins, with provenance for the
// section that produced it. Replacement uses strict >, so the first
// section in iteration order keeps exact ties. Principles with no
// qualifying entry anywhere are unrated: absent from Ratings, Gaps,
// Strengths, and the Average denominator, never treated as zero.
func Aggregate(sectionResults []model.SectionResult) *model.Assessment {
	ratings := make(map[string]model.AggregatedRating)

	for _, id := range catalog.PrincipleIDs() {
		best := model.AggregatedRating{PrincipleID: id}
		found := false
		for _, sr := range sectionResults {
			entry, ok := sr.Scores[id]
			if !ok || entry.NotApplicable || entry.Score <= 0 {
				continue
			}
			if !found || entry.Score > best.Score {
				best = model.AggregatedRating{
					PrincipleID: id,
					Score:       entry.Score,
					Reasoning:   entry.Reasoning,
					Confidence:  entry.Confidence,
					SectionID:   sr.SectionID,
					SectionName: sr.SectionName,
				}
				found = true
			}
		}
		if found {
			ratings[id] = best
		}
	}

	var gaps, strengths []model.AggregatedRating
	sum := 0
	for _, id := range catalog.PrincipleIDs() {
		rating, ok := ratings[id]
		if !ok {
			continue
		}
		sum += rating.Score
		if rating.Score <= 3 {
			gaps = append(gaps, rating)
		} else {
			strengths = append(strengths, rating)
		}
	}

	average := 0.0
	if len(ratings) > 0 {
		average = float64(sum) / float64(len(ratings))
	}

	// Worst first for gaps, best first for strengths. Stable keeps
	// catalog order among equal scores.
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Score < gaps[j].Score })
	sort.SliceStable(strengths, func(i, j int) bool { return strengths[i].Score > strengths[j].Score })

	return &model.Assessment{
		Ratings:   ratings,
		Average:   average,
		Gaps:      gaps,
		Strengths: strengths,
	}
}

// DeriveKeyTakeaways summarizes the gap set: the category whose gaps
// average lowest (first-seen order breaks ties), the three lowest-scoring
// gaps as top actions, and gaps scoring 2-3 as quick wins (closest to
// becoming strengths). Returns nil when there are no gaps.
func DeriveKeyTakeaways(gaps []model.AggregatedRating) *model.KeyTakeaways {
	if len(gaps) == 0 {
		return nil
	}

	type categoryStat struct {
		sum   int
		count int
	}
	var categoryOrder []model.Category
	stats := make(map[model.Category]*categoryStat)
	for _, gap := range gaps {
		p, ok := catalog.PrincipleByID(gap.PrincipleID)
		if !ok {
			continue
		}
		st, seen := stats[p.Category]
		if !seen {
			st = &categoryStat{}
			stats[p.Category] = st
			categoryOrder = append(categoryOrder, p.Category)
		}
		st.sum += gap.Score
		st.count++
	}

	var priority model.Category
	bestMean := 0.0
	for i, cat := range categoryOrder {
		mean := float64(stats[cat].sum) / float64(stats[cat].count)
		if i == 0 || mean < bestMean {
			priority = cat
			bestMean = mean
		}
	}

	topActions := gaps
	if len(topActions) > 3 {
		topActions = topActions[:3]
	}

	var quickWins []model.AggregatedRating
	for _, gap := range gaps {
		if gap.Score >= 2 && gap.Score <= 3 {
			quickWins = append(quickWins, gap)
		}
	}

	return &model.KeyTakeaways{
		PriorityCategory: priority,
		TopActions:       topActions,
		QuickWins:        quickWins,
	}
}

// OverallScore recomputes the rated-principle average with refined scores
// overriding their originals. Used for the published report's headline.
func OverallScore(assessment *model.Assessment, refined map[string]model.RefinedScore) float64 {
	if assessment == nil || len(assessment.Ratings) == 0 {
		return 0
	}
	sum := 0
	for id, rating := range assessment.Ratings {
		if rs, ok := refined[id]; ok {
			sum += rs.Score
		} else {
			sum += rating.Score
		}
	}
	return float64(sum) / float64(len(assessment.Ratings))
}
