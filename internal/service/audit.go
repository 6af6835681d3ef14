package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"learnlens/internal/cache"
	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// Progress event types sent over the audit WebSocket.
const (
	MsgSectionAnalyzing  = "section_analyzing"
	MsgSectionAnalyzed   = "section_analyzed"
	MsgAnalysisComplete  = "analysis_complete"
	MsgAnalysisFailed    = "analysis_failed"
	MsgRefinementStarted = "refinement_started"
	MsgRefinementDone    = "refinement_complete"
)

// Oracle is the scoring backend the audit service drives. Implemented by
// OracleService; tests substitute a stub.
type Oracle interface {
	ScoreSection(ctx context.Context, sectionName string, images []model.ImageBlob, prompt string) (map[string]model.ScoreResult, error)
	RefineScores(ctx context.Context, prompt string) (map[string]model.RefinedScore, error)
	MaxImages() int
}

// AuditService owns audit session lifecycle and drives the scoring
// pipeline: classify, filter, prompt, score, merge, aggregate.
type AuditService struct {
	audits      cache.AuditCache
	oracle      Oracle
	broadcaster Broadcaster
}

// NewAuditService creates a new audit service
func NewAuditService(audits cache.AuditCache, oracle Oracle) *AuditService {
	return &AuditService{
		audits: audits,
		oracle: oracle,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket progress events
func (s *AuditService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *AuditService) broadcast(auditID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAudit(auditID, msgType, payload)
	}
}

// CreateAudit starts an empty audit session.
func (s *AuditService) CreateAudit(ctx context.Context) (*model.Audit, error) {
	now := time.Now()
	audit := &model.Audit{
		ID:         uuid.NewString(),
		Refinement: model.RefinementSession{Phase: model.RefinementIdle},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.audits.Set(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// GetAudit loads an audit session.
func (s *AuditService) GetAudit(ctx context.Context, id string) (*model.Audit, error) {
	audit, err := s.audits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, &model.NotFoundError{Resource: "audit", ID: id}
	}
	return audit, nil
}

// DeleteAudit discards an audit session and everything in it.
func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	if _, err := s.GetAudit(ctx, id); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.DisconnectAudit(id)
	}
	return s.audits.Delete(ctx, id)
}

func (s *AuditService) save(ctx context.Context, audit *model.Audit) error {
	audit.UpdatedAt = time.Now()
	return s.audits.Set(ctx, audit)
}

// AddSection appends a section to the audit. Images and notes may still be
// changed until analysis runs.
func (s *AuditService) AddSection(ctx context.Context, auditID string, section model.Section) (*model.Audit, error) {
	if section.Name == "" {
		return nil, &model.ValidationError{Reason: "section name is required"}
	}
	if section.TypeOverride != "" && !section.TypeOverride.IsValid() {
		return nil, &model.ValidationError{Reason: fmt.Sprintf("unknown section type %q", section.TypeOverride)}
	}
	if len(section.Images) > s.oracle.MaxImages() {
		return nil, &model.ValidationError{
			Reason: fmt.Sprintf("section %q has %d images, maximum is %d", section.Name, len(section.Images), s.oracle.MaxImages()),
		}
	}

	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	section.ID = uuid.NewString()
	audit.Sections = append(audit.Sections, section)
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// RemoveSection drops a section from the audit.
func (s *AuditService) RemoveSection(ctx context.Context, auditID, sectionID string) (*model.Audit, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	for i := range audit.Sections {
		if audit.Sections[i].ID == sectionID {
			audit.Sections = append(audit.Sections[:i], audit.Sections[i+1:]...)
			if err := s.save(ctx, audit); err != nil {
				return nil, err
			}
			return audit, nil
		}
	}
	return nil, &model.NotFoundError{Resource: "section", ID: sectionID}
}

// SetContextAnswers records the user's upfront context answers. Only known
// questions with one of their listed options are accepted.
func (s *AuditService) SetContextAnswers(ctx context.Context, auditID string, answers map[string]string) (*model.Audit, error) {
	for qid, answer := range answers {
		q, ok := catalog.UpfrontQuestionByID(qid)
		if !ok {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("unknown context question %q", qid)}
		}
		valid := false
		for _, opt := range q.Options {
			if opt == answer {
				valid = true
				break
			}
		}
		if !valid {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("answer %q is not an option of question %q", answer, qid)}
		}
	}

	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	audit.ContextAnswers = answers
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// Analyze runs the scoring pipeline over every section, sequentially and
// fail-fast: sections are scored one oracle call at a time, and the first
// failure discards the whole run, already-scored sections included.
func (s *AuditService) Analyze(ctx context.Context, auditID string) (*model.Audit, error) {
	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if len(audit.Sections) == 0 {
		return nil, &model.ValidationError{Reason: "audit has no sections"}
	}
	for i := range audit.Sections {
		if len(audit.Sections[i].Images) == 0 {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("section %q has no images", audit.Sections[i].Name)}
		}
	}

	results := make([]model.SectionResult, 0, len(audit.Sections))
	for i := range audit.Sections {
		section := &audit.Sections[i]
		sectionType := sectionTypeOf(section)
		s.broadcast(auditID, MsgSectionAnalyzing, map[string]interface{}{
			"sectionId":   section.ID,
			"sectionName": section.Name,
			"sectionType": sectionType,
		})

		applicable := ApplicablePrinciples(sectionType)
		prompt := BuildSectionPrompt(section.Name, sectionType, section.Notes, audit.ContextAnswers, applicable)
		scores, err := s.oracle.ScoreSection(ctx, section.Name, section.Images, prompt)
		if err != nil {
			s.broadcast(auditID, MsgAnalysisFailed, map[string]interface{}{
				"sectionId":   section.ID,
				"sectionName": section.Name,
				"error":       err.Error(),
			})
			return nil, err
		}

		scores, err = fillNotApplicable(scores)
		if err != nil {
			return nil, &model.OracleError{Section: section.Name, Reason: err.Error()}
		}

		results = append(results, model.SectionResult{
			SectionID:   section.ID,
			SectionName: section.Name,
			SectionType: sectionType,
			Scores:      scores,
		})
		s.broadcast(auditID, MsgSectionAnalyzed, map[string]interface{}{
			"sectionId": section.ID,
			"analyzed":  len(results),
			"total":     len(audit.Sections),
		})
	}

	s.finishAnalysis(audit, results, false)
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}

	s.broadcast(auditID, MsgAnalysisComplete, audit.Assessment)
	if audit.Refinement.Phase == model.RefinementAwaiting {
		s.broadcast(auditID, MsgRefinementStarted, map[string]interface{}{
			"gaps": len(audit.Assessment.Gaps),
		})
	}
	return audit, nil
}

// ManualScore records self-rated scores, bypassing the oracle. The scores
// become a single synthetic section spanning the whole experience, so the
// aggregator and refinement flow work identically in both modes.
func (s *AuditService) ManualScore(ctx context.Context, auditID string, scores map[string]int) (*model.Audit, error) {
	if len(scores) == 0 {
		return nil, &model.ValidationError{Reason: "no scores supplied"}
	}
	resultScores := make(map[string]model.ScoreResult, len(scores))
	for id, score := range scores {
		if _, ok := catalog.PrincipleByID(id); !ok {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("unknown principle %q", id)}
		}
		if score < 0 || score > 5 {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("principle %q score %d is outside 0-5", id, score)}
		}
		resultScores[id] = model.ScoreResult{
			Score:         score,
			Reasoning:     "Self-rated",
			Confidence:    model.ConfidenceHigh,
			NotApplicable: score == 0,
		}
	}

	audit, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}

	resultScores, err = fillNotApplicable(resultScores)
	if err != nil {
		return nil, &model.ValidationError{Reason: err.Error()}
	}

	results := []model.SectionResult{{
		SectionID:   uuid.NewString(),
		SectionName: "Overall experience",
		SectionType: model.SectionTypeOverall,
		Scores:      resultScores,
	}}
	s.finishAnalysis(audit, results, true)
	if err := s.save(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// finishAnalysis installs a successful run's results and derived views,
// and opens the refinement flow when the aggregation found gaps.
func (s *AuditService) finishAnalysis(audit *model.Audit, results []model.SectionResult, manual bool) {
	audit.Results = results
	audit.Manual = manual
	audit.Assessment = Aggregate(results)
	audit.Takeaways = DeriveKeyTakeaways(audit.Assessment.Gaps)

	phase := model.RefinementDone
	if len(audit.Assessment.Gaps) > 0 {
		phase = model.RefinementAwaiting
	}
	audit.Refinement = model.RefinementSession{
		Phase:   phase,
		Answers: make(map[string]model.RefinementAnswer),
	}
}

// PresentTypes returns the distinct section types in the audit.
func (s *AuditService) PresentTypes(audit *model.Audit) map[model.SectionType]bool {
	names := make([]string, 0, len(audit.Sections))
	types := make(map[model.SectionType]bool)
	for i := range audit.Sections {
		if audit.Sections[i].TypeOverride != "" {
			types[sectionTypeOf(&audit.Sections[i])] = true
			continue
		}
		names = append(names, audit.Sections[i].Name)
	}
	for t := range ClassifyAll(names) {
		types[t] = true
	}
	return types
}
