package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlens/internal/model"
)

func recommendedTypes(recs []model.Recommendation) []model.SectionType {
	types := make([]model.SectionType, len(recs))
	for i, rec := range recs {
		types[i] = rec.SectionType
	}
	return types
}

func TestRecommendMissingEmptyAudit(t *testing.T) {
	recs := RecommendMissing(nil)
	types := recommendedTypes(recs)

	assert.Contains(t, types, model.SectionTypePractice)
	assert.Contains(t, types, model.SectionTypeQuiz)
	assert.Contains(t, types, model.SectionTypePreQuiz)
	assert.Contains(t, types, model.SectionTypePostQuiz)
	assert.Contains(t, types, model.SectionTypeReview)

	// High before medium before low.
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, priorityRank[recs[i-1].Priority], priorityRank[recs[i].Priority])
	}
}

func TestRecommendMissingSuppressesPresentTypes(t *testing.T) {
	present := map[model.SectionType]bool{
		model.SectionTypePractice: true,
		model.SectionTypeReview:   true,
	}
	types := recommendedTypes(RecommendMissing(present))
	assert.NotContains(t, types, model.SectionTypePractice)
	assert.NotContains(t, types, model.SectionTypeReview)
	assert.Contains(t, types, model.SectionTypeQuiz)
}

func TestRecommendMissingQuizSuppressedByQuizVariants(t *testing.T) {
	// A pre-quiz already covers the general assessment need, so only the
	// generic quiz recommendation drops; post-quiz is still worth adding.
	types := recommendedTypes(RecommendMissing(map[model.SectionType]bool{
		model.SectionTypePreQuiz: true,
	}))
	assert.NotContains(t, types, model.SectionTypeQuiz)
	assert.NotContains(t, types, model.SectionTypePreQuiz)
	assert.Contains(t, types, model.SectionTypePostQuiz)

	types = recommendedTypes(RecommendMissing(map[model.SectionType]bool{
		model.SectionTypePostQuiz: true,
	}))
	assert.NotContains(t, types, model.SectionTypeQuiz)
}

func TestRecommendMissingAllPresent(t *testing.T) {
	present := map[model.SectionType]bool{
		model.SectionTypePractice: true,
		model.SectionTypeQuiz:     true,
		model.SectionTypePreQuiz:  true,
		model.SectionTypePostQuiz: true,
		model.SectionTypeReview:   true,
	}
	assert.Empty(t, RecommendMissing(present))
}

func TestRecommendMissingKeepsAdviceText(t *testing.T) {
	recs := RecommendMissing(nil)
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Advice)
	}
}
