package model

// Confidence is the oracle's self-reported certainty for one score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ScoreResult is the oracle's verdict for one (section, principle) pair.
// Score 0 is reserved for "not applicable"; real scores are 1-5.
type ScoreResult struct {
	Score         int        `json:"score" bson:"score"`
	Reasoning     string     `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	Confidence    Confidence `json:"confidence,omitempty" bson:"confidence,omitempty"`
	NotApplicable bool       `json:"notApplicable,omitempty" bson:"notApplicable,omitempty"`
}

// SectionResult holds one section's scores. Invariant: Scores contains an
// entry for every principle in the catalog, either a real score or an
// explicit not-applicable marker. Immutable once the analysis run finishes.
type SectionResult struct {
	SectionID   string                 `json:"sectionId" bson:"sectionId"`
	SectionName string                 `json:"sectionName" bson:"sectionName"`
	SectionType SectionType            `json:"sectionType" bson:"sectionType"`
	Scores      map[string]ScoreResult `json:"scores" bson:"scores"`
}

// AggregatedRating is the best applicable score a principle earned across
// all sections, with provenance for which section produced it.
type AggregatedRating struct {
	PrincipleID string     `json:"principleId" bson:"principleId"`
	Score       int        `json:"score" bson:"score"`
	Reasoning   string     `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	Confidence  Confidence `json:"confidence,omitempty" bson:"confidence,omitempty"`
	SectionID   string     `json:"sectionId" bson:"sectionId"`
	SectionName string     `json:"sectionName" bson:"sectionName"`
}

// Assessment is the aggregated view over all section results. Principles
// with no applicable score anywhere are absent from Ratings (unrated), and
// excluded from Average.
type Assessment struct {
	Ratings   map[string]AggregatedRating `json:"ratings" bson:"ratings"`
	Average   float64                     `json:"average" bson:"average"`
	Gaps      []AggregatedRating          `json:"gaps" bson:"gaps"`           // score <= 3, worst first
	Strengths []AggregatedRating          `json:"strengths" bson:"strengths"` // score >= 4, best first
}

// RefinedScore is a follow-up-refined replacement for a gap principle's
// score. The original score is kept so the report can show the delta.
type RefinedScore struct {
	PrincipleID   string   `json:"principleId" bson:"principleId"`
	OriginalScore int      `json:"originalScore" bson:"originalScore"`
	Score         int      `json:"score" bson:"score"`
	Reasoning     string   `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	Actions       []string `json:"actions,omitempty" bson:"actions,omitempty"`
}

// KeyTakeaways is the summary derived from the gap set.
type KeyTakeaways struct {
	PriorityCategory Category           `json:"priorityCategory" bson:"priorityCategory"`
	TopActions       []AggregatedRating `json:"topActions" bson:"topActions"` // 3 lowest-scoring gaps
	QuickWins        []AggregatedRating `json:"quickWins" bson:"quickWins"`   // gaps scoring 2-3
}

// Priority ranks a missing-flow recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation advises adding a section type the audit lacks.
type Recommendation struct {
	SectionType SectionType `json:"sectionType"`
	Priority    Priority    `json:"priority"`
	Title       string      `json:"title"`
	Advice      string      `json:"advice"`
}
