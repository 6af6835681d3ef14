package catalog

import "learnlens/internal/model"

// missingFlowTable lists section types an audit is expected to have, in
// priority order. The advisor filters it against the types present.
var missingFlowTable = []model.Recommendation{
	{
		SectionType: model.SectionTypePractice,
		Priority:    model.PriorityHigh,
		Title:       "Add a practice phase",
		Advice:      "Learners need hands-on application between lessons. Add exercises where they use the material, not just consume it.",
	},
	{
		SectionType: model.SectionTypeQuiz,
		Priority:    model.PriorityHigh,
		Title:       "Add knowledge checks",
		Advice:      "No quiz phase was found. Regular low-stakes quizzes drive retrieval practice and surface misconceptions early.",
	},
	{
		SectionType: model.SectionTypePreQuiz,
		Priority:    model.PriorityMedium,
		Title:       "Add a pre-lesson quiz",
		Advice:      "Attempting questions before instruction primes learners for the material and makes later study more effective.",
	},
	{
		SectionType: model.SectionTypePostQuiz,
		Priority:    model.PriorityMedium,
		Title:       "Add a post-lesson quiz",
		Advice:      "A quiz after each lesson confirms the material stuck and gives spaced-repetition scheduling something to work from.",
	},
	{
		SectionType: model.SectionTypeReview,
		Priority:    model.PriorityLow,
		Title:       "Add a review phase",
		Advice:      "Dedicated review sessions let spaced repetition bring earlier material back before it fades.",
	},
}

// MissingFlowTable returns the full recommendation table in priority order.
func MissingFlowTable() []model.Recommendation {
	return missingFlowTable
}
