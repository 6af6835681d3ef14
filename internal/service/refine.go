package service

import (
	"context"
	"fmt"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// RefinementView is what the client renders during the follow-up flow:
// the current gap's question plus position in the walk.
type RefinementView struct {
	Phase         model.RefinementPhase         `json:"phase"`
	Cursor        int                           `json:"cursor"`
	Total         int                           `json:"total"`
	PrincipleID   string                        `json:"principleId,omitempty"`
	Title         string                        `json:"title,omitempty"`
	OriginalScore int                           `json:"originalScore,omitempty"`
	Question      *catalog.FollowUpQuestion     `json:"question,omitempty"`
	Answer        *model.RefinementAnswer       `json:"answer,omitempty"`
	Refined       map[string]model.RefinedScore `json:"refined,omitempty"`
}

// RefinementState returns the current position in the follow-up flow.
func (s *AuditService) RefinementState(ctx context.Context, auditID string) (*RefinementView, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	return s.refinementView(audit), nil
}

func (s *AuditService) refinementView(audit *model.Audit) *RefinementView {
	view := &RefinementView{
		Phase:   audit.Refinement.Phase,
		Cursor:  audit.Refinement.Cursor,
		Refined: audit.Refinement.Refined,
	}
	if audit.Assessment == nil {
		return view
	}
	view.Total = len(audit.Assessment.Gaps)
	if audit.Refinement.Phase != model.RefinementAwaiting ||
		audit.Refinement.Cursor >= len(audit.Assessment.Gaps) {
		return view
	}

	gap := audit.Assessment.Gaps[audit.Refinement.Cursor]
	view.PrincipleID = gap.PrincipleID
	view.OriginalScore = gap.Score
	if p, ok := catalog.PrincipleByID(gap.PrincipleID); ok {
		view.Title = p.Title
	}
	if q, ok := catalog.FollowUpFor(gap.PrincipleID); ok {
		view.Question = &q
	}
	if answer, ok := audit.Refinement.Answers[gap.PrincipleID]; ok {
		view.Answer = &answer
	}
	return view
}

func requireAwaiting(audit *model.Audit) error {
	if audit.Refinement.Phase != model.RefinementAwaiting {
		return &model.ValidationError{
			Reason: fmt.Sprintf("refinement is %s, expected %s", audit.Refinement.Phase, model.RefinementAwaiting),
		}
	}
	return nil
}

// SaveRefinementAnswer records the answer for one gap principle and
// advances to the next question. Completing the last question leaves the
// flow in awaiting-answers; the client then calls CompleteRefinement.
func (s *AuditService) SaveRefinementAnswer(ctx context.Context, auditID, principleID string, answer model.RefinementAnswer) (*RefinementView, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := requireAwaiting(audit); err != nil {
		return nil, err
	}
	if !s.isGap(audit, principleID) {
		return nil, &model.ValidationError{Reason: fmt.Sprintf("principle %q is not in the gap set", principleID)}
	}

	if audit.Refinement.Answers == nil {
		audit.Refinement.Answers = make(map[string]model.RefinementAnswer)
	}
	audit.Refinement.Answers[principleID] = answer
	if audit.Refinement.Cursor < len(audit.Assessment.Gaps) {
		audit.Refinement.Cursor++
	}
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return s.refinementView(audit), nil
}

// SkipRefinementQuestion advances past the current question without
// recording a selection.
func (s *AuditService) SkipRefinementQuestion(ctx context.Context, auditID string) (*RefinementView, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := requireAwaiting(audit); err != nil {
		return nil, err
	}
	if audit.Refinement.Cursor < len(audit.Assessment.Gaps) {
		audit.Refinement.Cursor++
	}
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return s.refinementView(audit), nil
}

// PreviousRefinementQuestion steps back one question. Non-destructive:
// answers already entered stay recorded.
func (s *AuditService) PreviousRefinementQuestion(ctx context.Context, auditID string) (*RefinementView, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := requireAwaiting(audit); err != nil {
		return nil, err
	}
	if audit.Refinement.Cursor > 0 {
		audit.Refinement.Cursor--
	}
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return s.refinementView(audit), nil
}

// CompleteRefinement sends the original gap scores and all collected
// answers (skipped questions included, as empty) to the oracle in one
// batched call and merges the refined scores. On failure the flow falls
// back to skipped with the pre-refinement scores intact; the rating set
// is never left half-updated.
func (s *AuditService) CompleteRefinement(ctx context.Context, auditID string) (*model.Audit, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := requireAwaiting(audit); err != nil {
		return nil, err
	}

	audit.Refinement.Phase = model.RefinementRefining
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}

	prompt := BuildRefinePrompt(audit.Assessment.Gaps, audit.Refinement.Answers)
	refined, oracleErr := s.oracle.RefineScores(ctx, prompt)
	if oracleErr != nil {
		audit.Refinement.Phase = model.RefinementSkipped
		if saveErr := s.save(ctx, audit); saveErr != nil {
			return nil, saveErr
		}
		return nil, oracleErr
	}

	// A refined score is only ever compared with its own original, and the
	// original always stays displayable; OriginalScore is pinned to the
	// pre-refinement aggregated score regardless of what the model echoed.
	merged := make(map[string]model.RefinedScore)
	for _, gap := range audit.Assessment.Gaps {
		rs, ok := refined[gap.PrincipleID]
		if !ok {
			continue
		}
		rs.OriginalScore = gap.Score
		merged[gap.PrincipleID] = rs
	}

	audit.Refinement.Refined = merged
	audit.Refinement.Phase = model.RefinementDone
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}

	s.broadcast(auditID, MsgRefinementDone, merged)
	return audit, nil
}

// SkipRefinement abandons the follow-up flow entirely, leaving the
// pre-refinement aggregated scores as final.
func (s *AuditService) SkipRefinement(ctx context.Context, auditID string) (*model.Audit, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if audit.Refinement.Phase != model.RefinementAwaiting && audit.Refinement.Phase != model.RefinementRefining {
		return nil, &model.ValidationError{
			Reason: fmt.Sprintf("refinement is %s and cannot be skipped", audit.Refinement.Phase),
		}
	}
	audit.Refinement.Phase = model.RefinementSkipped
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

func (s *AuditService) isGap(audit *model.Audit, principleID string) bool {
	if audit.Assessment == nil {
		return false
	}
	for _, gap := range audit.Assessment.Gaps {
		if gap.PrincipleID == principleID {
			return true
		}
	}
	return false
}
