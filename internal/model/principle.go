package model

// Category groups principles into the six areas shown in the report.
type Category string

const (
	CategoryMemory          Category = "Memory & Retention"
	CategoryPractice        Category = "Practice & Application"
	CategoryCognitiveLoad   Category = "Cognitive Load"
	CategoryFeedback        Category = "Feedback & Assessment"
	CategoryMotivation      Category = "Motivation & Engagement"
	CategoryPersonalization Category = "Personalization"
)

// RubricLevel is one level of a principle's 1-5 scoring rubric.
type RubricLevel struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Principle is one learning-science principle products are audited against.
// Principles are defined once in the catalog package and never mutated.
type Principle struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Category Category      `json:"category"`
	Question string        `json:"question"` // what the oracle is asked to judge
	Rubric   []RubricLevel `json:"rubric"`   // exactly 5 levels, 1..5

	// Recommendation is shown when the principle scores low.
	Recommendation string `json:"recommendation"`

	// AppliesTo limits the principle to specific section types.
	// Empty means the principle applies to every section type.
	AppliesTo []SectionType `json:"appliesTo,omitempty"`
}

// AppliesToType reports whether the principle should be scored for the
// given section type. An empty AppliesTo set is a wildcard.
func (p *Principle) AppliesToType(t SectionType) bool {
	if len(p.AppliesTo) == 0 {
		return true
	}
	for _, st := range p.AppliesTo {
		if st == t {
			return true
		}
	}
	return false
}
