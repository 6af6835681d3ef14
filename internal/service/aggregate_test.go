package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlens/internal/model"
)

func sectionResult(id, name string, scores map[string]model.ScoreResult) model.SectionResult {
	return model.SectionResult{SectionID: id, SectionName: name, Scores: scores}
}

func TestAggregateMaxWinsWithProvenance(t *testing.T) {
	results := []model.SectionResult{
		sectionResult("a", "Section A", map[string]model.ScoreResult{
			"retrieval-practice": {Score: 3, Reasoning: "some recall", Confidence: model.ConfidenceMedium},
		}),
		sectionResult("b", "Section B", map[string]model.ScoreResult{
			"retrieval-practice": {Score: 4, Reasoning: "recall before feedback", Confidence: model.ConfidenceHigh},
		}),
		sectionResult("c", "Section C", map[string]model.ScoreResult{
			"retrieval-practice": {NotApplicable: true},
		}),
	}
	assessment := Aggregate(results)

	rating, ok := assessment.Ratings["retrieval-practice"]
	require.True(t, ok)
	assert.Equal(t, 4, rating.Score)
	assert.Equal(t, "b", rating.SectionID)
	assert.Equal(t, "Section B", rating.SectionName)
	assert.Equal(t, "recall before feedback", rating.Reasoning)
}

func TestAggregateTiesKeepFirstSection(t *testing.T) {
	results := []model.SectionResult{
		sectionResult("first", "First", map[string]model.ScoreResult{
			"goal-clarity": {Score: 3, Reasoning: "objectives listed"},
		}),
		sectionResult("second", "Second", map[string]model.ScoreResult{
			"goal-clarity": {Score: 3, Reasoning: "same level elsewhere"},
		}),
	}
	assessment := Aggregate(results)
	assert.Equal(t, "first", assessment.Ratings["goal-clarity"].SectionID)
}

func TestAggregateUnratedPrinciplesAreAbsent(t *testing.T) {
	results := []model.SectionResult{
		sectionResult("a", "A", map[string]model.ScoreResult{
			"dual-coding":     {Score: 5, Reasoning: "labeled diagrams"},
			"goal-clarity":    {NotApplicable: true},
			"worked-examples": {Score: 0},
		}),
	}
	assessment := Aggregate(results)

	// NA-everywhere and zero-score entries never become ratings, and never
	// drag the average down.
	_, ok := assessment.Ratings["goal-clarity"]
	assert.False(t, ok)
	_, ok = assessment.Ratings["worked-examples"]
	assert.False(t, ok)
	assert.Equal(t, 5.0, assessment.Average)
}

func TestAggregateGapStrengthPartition(t *testing.T) {
	results := []model.SectionResult{
		sectionResult("a", "A", map[string]model.ScoreResult{
			"spaced-repetition":  {Score: 1},
			"retrieval-practice": {Score: 3},
			"dual-coding":        {Score: 4},
			"immediate-feedback": {Score: 5},
		}),
	}
	assessment := Aggregate(results)

	require.Len(t, assessment.Gaps, 2)
	require.Len(t, assessment.Strengths, 2)
	// Gaps worst first, strengths best first.
	assert.Equal(t, "spaced-repetition", assessment.Gaps[0].PrincipleID)
	assert.Equal(t, "retrieval-practice", assessment.Gaps[1].PrincipleID)
	assert.Equal(t, "immediate-feedback", assessment.Strengths[0].PrincipleID)
	assert.Equal(t, "dual-coding", assessment.Strengths[1].PrincipleID)
	assert.InDelta(t, 13.0/4.0, assessment.Average, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	assessment := Aggregate(nil)
	assert.Empty(t, assessment.Ratings)
	assert.Zero(t, assessment.Average)
	assert.Empty(t, assessment.Gaps)
	assert.Empty(t, assessment.Strengths)
}

func TestDeriveKeyTakeaways(t *testing.T) {
	gaps := []model.AggregatedRating{
		{PrincipleID: "spaced-repetition", Score: 1},  // Memory & Retention
		{PrincipleID: "interleaving", Score: 2},       // Practice & Application
		{PrincipleID: "retrieval-practice", Score: 3}, // Memory & Retention
		{PrincipleID: "worked-examples", Score: 3},    // Practice & Application
	}
	tk := DeriveKeyTakeaways(gaps)
	require.NotNil(t, tk)

	// Memory averages 2.0, Practice 2.5: memory is the priority category.
	assert.Equal(t, model.CategoryMemory, tk.PriorityCategory)

	require.Len(t, tk.TopActions, 3)
	assert.Equal(t, "spaced-repetition", tk.TopActions[0].PrincipleID)

	// Quick wins are the 2-3 scorers; the 1 is too far gone.
	require.Len(t, tk.QuickWins, 3)
	for _, qw := range tk.QuickWins {
		assert.NotEqual(t, "spaced-repetition", qw.PrincipleID)
	}
}

func TestDeriveKeyTakeawaysCategoryTieKeepsFirstSeen(t *testing.T) {
	gaps := []model.AggregatedRating{
		{PrincipleID: "interleaving", Score: 2},      // Practice & Application
		{PrincipleID: "spaced-repetition", Score: 2}, // Memory & Retention
	}
	tk := DeriveKeyTakeaways(gaps)
	require.NotNil(t, tk)
	assert.Equal(t, model.CategoryPractice, tk.PriorityCategory)
}

func TestDeriveKeyTakeawaysNoGaps(t *testing.T) {
	assert.Nil(t, DeriveKeyTakeaways(nil))
	assert.Nil(t, DeriveKeyTakeaways([]model.AggregatedRating{}))
}

func TestOverallScoreAppliesRefinements(t *testing.T) {
	assessment := &model.Assessment{
		Ratings: map[string]model.AggregatedRating{
			"spaced-repetition": {PrincipleID: "spaced-repetition", Score: 2},
			"dual-coding":       {PrincipleID: "dual-coding", Score: 4},
		},
	}
	refined := map[string]model.RefinedScore{
		"spaced-repetition": {PrincipleID: "spaced-repetition", OriginalScore: 2, Score: 4},
	}
	assert.InDelta(t, 4.0, OverallScore(assessment, refined), 1e-9)
	assert.InDelta(t, 3.0, OverallScore(assessment, nil), 1e-9)
	assert.Zero(t, OverallScore(nil, nil))
}
