package model

// SectionType is the closed classification of a section's role in the
// learning experience. "overall" is synthetic: it means "spans the whole
// experience" and is used when an audit mixes several distinct types.
type SectionType string

const (
	SectionTypePreQuiz    SectionType = "pre-quiz"
	SectionTypePostQuiz   SectionType = "post-quiz"
	SectionTypeQuiz       SectionType = "quiz"
	SectionTypeLesson     SectionType = "lesson"
	SectionTypePractice   SectionType = "practice"
	SectionTypeReview     SectionType = "review"
	SectionTypeOnboarding SectionType = "onboarding"
	SectionTypeOverall    SectionType = "overall"
)

// SectionTypes lists every concrete section type plus the synthetic overall.
var SectionTypes = []SectionType{
	SectionTypePreQuiz,
	SectionTypePostQuiz,
	SectionTypeQuiz,
	SectionTypeLesson,
	SectionTypePractice,
	SectionTypeReview,
	SectionTypeOnboarding,
	SectionTypeOverall,
}

// IsValid reports whether t is one of the known section types.
func (t SectionType) IsValid() bool {
	for _, st := range SectionTypes {
		if st == t {
			return true
		}
	}
	return false
}

// ImageBlob is one uploaded screenshot. Data travels base64-encoded in JSON.
type ImageBlob struct {
	Data      []byte `json:"data"`
	MediaType string `json:"mediaType"` // e.g. "image/png"
}

// Section is a user-defined phase of the audited experience. Its type is
// derived from Name by the classifier unless TypeOverride is set.
type Section struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	TypeOverride SectionType `json:"typeOverride,omitempty"`
	Images       []ImageBlob `json:"images,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}
