package service

import (
	"sort"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

var priorityRank = map[model.Priority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// RecommendMissing suggests section types the audit lacks. A
// recommendation is suppressed when its type is present, and the generic
// quiz recommendation is additionally suppressed when a pre- or post-quiz
// exists: any quiz-like phase satisfies the general need. Output is sorted
// high to low priority, stable within a priority.
func RecommendMissing(present map[model.SectionType]bool) []model.Recommendation {
	var recs []model.Recommendation
	for _, rec := range catalog.MissingFlowTable() {
		if present[rec.SectionType] {
			continue
		}
		if rec.SectionType == model.SectionTypeQuiz &&
			(present[model.SectionTypePreQuiz] || present[model.SectionTypePostQuiz]) {
			continue
		}
		recs = append(recs, rec)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
	return recs
}
