package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

func TestApplicablePrinciplesWildcards(t *testing.T) {
	// Wildcard principles (empty AppliesTo) must show up for every type.
	var wildcards []string
	for _, p := range catalog.Principles() {
		if len(p.AppliesTo) == 0 {
			wildcards = append(wildcards, p.ID)
		}
	}
	require.NotEmpty(t, wildcards)

	for _, st := range model.SectionTypes {
		ids := ApplicablePrinciples(st)
		for _, w := range wildcards {
			assert.Contains(t, ids, w, "wildcard %s missing for type %s", w, st)
		}
	}
}

func TestApplicablePrinciplesRespectsMembership(t *testing.T) {
	// Interleaving targets mixed practice and later quizzes, never the
	// pre-lesson baseline.
	assert.NotContains(t, ApplicablePrinciples(model.SectionTypePreQuiz), "interleaving")
	assert.Contains(t, ApplicablePrinciples(model.SectionTypePostQuiz), "interleaving")
	assert.Contains(t, ApplicablePrinciples(model.SectionTypePractice), "interleaving")

	// Pretesting only makes sense before the content, or overall.
	assert.Contains(t, ApplicablePrinciples(model.SectionTypePreQuiz), "pretesting")
	assert.NotContains(t, ApplicablePrinciples(model.SectionTypeLesson), "pretesting")
}

func TestApplicablePrinciplesPreservesCatalogOrder(t *testing.T) {
	ids := ApplicablePrinciples(model.SectionTypeLesson)
	pos := make(map[string]int)
	for i, id := range catalog.PrincipleIDs() {
		pos[id] = i
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, pos[ids[i-1]], pos[ids[i]])
	}
}

func TestFillNotApplicableCompletes(t *testing.T) {
	scores := map[string]model.ScoreResult{
		"spaced-repetition": {Score: 4, Reasoning: "daily reviews", Confidence: model.ConfidenceHigh},
	}
	filled, err := fillNotApplicable(scores)
	require.NoError(t, err)
	assert.Len(t, filled, len(catalog.Principles()))

	// Present entries are untouched, absent ones become explicit NA.
	assert.Equal(t, 4, filled["spaced-repetition"].Score)
	assert.True(t, filled["retrieval-practice"].NotApplicable)
	assert.Equal(t, 0, filled["retrieval-practice"].Score)
}

func TestFillNotApplicableNilMap(t *testing.T) {
	filled, err := fillNotApplicable(nil)
	require.NoError(t, err)
	assert.Len(t, filled, len(catalog.Principles()))
	for _, sr := range filled {
		assert.True(t, sr.NotApplicable)
	}
}

func TestFillNotApplicableRejectsUnknownIDs(t *testing.T) {
	scores := map[string]model.ScoreResult{
		"not-in-catalog": {Score: 3},
	}
	_, err := fillNotApplicable(scores)
	assert.Error(t, err)
}
