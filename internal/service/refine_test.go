package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlens/internal/model"
)

// auditWithGaps seeds an audit via manual scoring so the refinement flow
// opens with a deterministic gap set: spaced-repetition (2) then
// interleaving (3), worst first.
func auditWithGaps(t *testing.T, svc *AuditService) *model.Audit {
	t.Helper()
	ctx := context.Background()
	audit, err := svc.CreateAudit(ctx)
	require.NoError(t, err)
	audit, err = svc.ManualScore(ctx, audit.ID, map[string]int{
		"spaced-repetition": 2,
		"interleaving":      3,
		"dual-coding":       5,
	})
	require.NoError(t, err)
	require.Equal(t, model.RefinementAwaiting, audit.Refinement.Phase)
	require.Len(t, audit.Assessment.Gaps, 2)
	require.Equal(t, "spaced-repetition", audit.Assessment.Gaps[0].PrincipleID)
	require.Equal(t, "interleaving", audit.Assessment.Gaps[1].PrincipleID)
	return audit
}

func TestRefinementStateWalk(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit := auditWithGaps(t, svc)

	view, err := svc.RefinementState(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RefinementAwaiting, view.Phase)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, "spaced-repetition", view.PrincipleID)
	assert.Equal(t, 2, view.OriginalScore)
	require.NotNil(t, view.Question)
	assert.Equal(t, "spaced-repetition", view.Question.PrincipleID)
	assert.Nil(t, view.Answer)
}

func TestSaveRefinementAnswerAdvances(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit := auditWithGaps(t, svc)

	view, err := svc.SaveRefinementAnswer(ctx, audit.ID, "spaced-repetition", model.RefinementAnswer{
		Selected: []string{"Reviews happen on a schedule"},
		FreeText: "Daily deck with growing intervals.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cursor)
	assert.Equal(t, "interleaving", view.PrincipleID)

	// Answers survive navigation back to an answered question.
	view, err = svc.PreviousRefinementQuestion(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Cursor)
	require.NotNil(t, view.Answer)
	assert.Equal(t, "Daily deck with growing intervals.", view.Answer.FreeText)
}

func TestSaveRefinementAnswerRejectsNonGaps(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit := auditWithGaps(t, svc)

	var verr *model.ValidationError
	_, err := svc.SaveRefinementAnswer(ctx, audit.ID, "dual-coding", model.RefinementAnswer{})
	require.ErrorAs(t, err, &verr)
}

func TestSkipRefinementQuestion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit := auditWithGaps(t, svc)

	view, err := svc.SkipRefinementQuestion(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cursor)
	assert.Nil(t, view.Answer)

	// The cursor never walks past the end.
	view, err = svc.SkipRefinementQuestion(ctx, audit.ID)
	require.NoError(t, err)
	view, err = svc.SkipRefinementQuestion(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Cursor)

	// Nor below the start.
	for i := 0; i < 3; i++ {
		view, err = svc.PreviousRefinementQuestion(ctx, audit.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, view.Cursor)
}

func TestCompleteRefinementMergesScores(t *testing.T) {
	ctx := context.Background()
	oracle := &stubOracle{}
	oracle.refineFn = func(string) (map[string]model.RefinedScore, error) {
		return map[string]model.RefinedScore{
			"spaced-repetition": {
				Score:     4,
				Reasoning: "user confirmed expanding intervals",
				Actions:   []string{"surface the schedule in the UI"},
				// The model echoing a wrong original must not matter.
				OriginalScore: 99,
			},
		}, nil
	}
	svc, _ := newTestAuditService(oracle)
	b := &recordingBroadcaster{}
	svc.SetBroadcaster(b)
	audit := auditWithGaps(t, svc)

	_, err := svc.SaveRefinementAnswer(ctx, audit.ID, "spaced-repetition", model.RefinementAnswer{
		FreeText: "Intervals expand per item.",
	})
	require.NoError(t, err)

	audit, err = svc.CompleteRefinement(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RefinementDone, audit.Refinement.Phase)

	// Both gaps appear in the prompt, the skipped one marked as such.
	assert.Contains(t, oracle.refinePrompt, "Intervals expand per item.")
	assert.Contains(t, oracle.refinePrompt, "(question skipped)")

	require.Len(t, audit.Refinement.Refined, 1)
	rs := audit.Refinement.Refined["spaced-repetition"]
	assert.Equal(t, 4, rs.Score)
	// OriginalScore is pinned to the pre-refinement aggregated score.
	assert.Equal(t, 2, rs.OriginalScore)

	// The original ratings are untouched; refined scores live beside them.
	assert.Equal(t, 2, audit.Assessment.Ratings["spaced-repetition"].Score)

	assert.Contains(t, b.events, MsgRefinementDone)
}

func TestCompleteRefinementFailureFallsBackToSkipped(t *testing.T) {
	ctx := context.Background()
	oracle := &stubOracle{}
	oracle.refineFn = func(string) (map[string]model.RefinedScore, error) {
		return nil, &model.OracleError{Reason: "stub refinement failure"}
	}
	svc, _ := newTestAuditService(oracle)
	audit := auditWithGaps(t, svc)

	_, err := svc.CompleteRefinement(ctx, audit.ID)
	var oerr *model.OracleError
	require.ErrorAs(t, err, &oerr)

	audit, err = svc.GetAudit(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RefinementSkipped, audit.Refinement.Phase)
	assert.Empty(t, audit.Refinement.Refined)
	// Pre-refinement scores stand as final.
	assert.Equal(t, 2, audit.Assessment.Ratings["spaced-repetition"].Score)
}

func TestSkipRefinement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit := auditWithGaps(t, svc)

	audit, err := svc.SkipRefinement(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RefinementSkipped, audit.Refinement.Phase)

	// Once skipped, nothing in the flow is callable anymore.
	var verr *model.ValidationError
	_, err = svc.SkipRefinement(ctx, audit.ID)
	require.ErrorAs(t, err, &verr)
	_, err = svc.SaveRefinementAnswer(ctx, audit.ID, "spaced-repetition", model.RefinementAnswer{})
	require.ErrorAs(t, err, &verr)
	_, err = svc.CompleteRefinement(ctx, audit.ID)
	require.ErrorAs(t, err, &verr)
}

func TestRefinementNotOpenBeforeAnalysis(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuditService(&stubOracle{})
	audit, err := svc.CreateAudit(ctx)
	require.NoError(t, err)

	view, err := svc.RefinementState(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RefinementIdle, view.Phase)
	assert.Zero(t, view.Total)

	var verr *model.ValidationError
	_, err = svc.SaveRefinementAnswer(ctx, audit.ID, "spaced-repetition", model.RefinementAnswer{})
	require.ErrorAs(t, err, &verr)
}
