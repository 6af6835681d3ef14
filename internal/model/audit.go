package model

import "time"

// RefinementPhase is the state of the follow-up refinement flow.
type RefinementPhase string

const (
	RefinementIdle     RefinementPhase = "idle"
	RefinementAwaiting RefinementPhase = "awaiting-answers"
	RefinementRefining RefinementPhase = "refining"
	RefinementDone     RefinementPhase = "done"
	RefinementSkipped  RefinementPhase = "skipped"
)

// RefinementAnswer is the user's response to one gap principle's
// clarifying question. Both fields may be empty (question skipped).
type RefinementAnswer struct {
	Selected []string `json:"selected,omitempty"`
	FreeText string   `json:"freeText,omitempty"`
}

// RefinementSession tracks the one-question-at-a-time follow-up flow for
// the current audit's gaps. Cursor indexes into the gap list.
type RefinementSession struct {
	Phase   RefinementPhase             `json:"phase"`
	Cursor  int                         `json:"cursor"`
	Answers map[string]RefinementAnswer `json:"answers,omitempty"` // principle id -> answer
	Refined map[string]RefinedScore     `json:"refined,omitempty"` // principle id -> refined score
}

// Audit is one audit session. All state for a run lives here; a reset
// replaces the whole thing. Cached by id, never shared across sessions.
type Audit struct {
	ID       string    `json:"id"`
	Sections []Section `json:"sections"`

	// ContextAnswers maps upfront question id -> chosen answer. Only
	// questions the user actually answered are present.
	ContextAnswers map[string]string `json:"contextAnswers,omitempty"`

	// Results and the derived views are set by a successful analysis run
	// and discarded wholesale on failure or reset.
	Results    []SectionResult `json:"results,omitempty"`
	Assessment *Assessment     `json:"assessment,omitempty"`
	Takeaways  *KeyTakeaways   `json:"takeaways,omitempty"`

	// Manual is true when scores were self-rated rather than oracle-scored.
	Manual bool `json:"manual,omitempty"`

	Refinement RefinementSession `json:"refinement"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionByID returns the section with the given id, or nil.
func (a *Audit) SectionByID(id string) *Section {
	for i := range a.Sections {
		if a.Sections[i].ID == id {
			return &a.Sections[i]
		}
	}
	return nil
}
