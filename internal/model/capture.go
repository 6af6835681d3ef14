package model

// Capture is one screenshot exported by the browser-automation live audit.
// The audit pipeline only consumes the image; content type, correctness and
// persona tags are carried through for display but never interpreted here.
type Capture struct {
	Image       string `json:"image"` // base64 image bytes
	MediaType   string `json:"mediaType,omitempty"`
	ContentType string `json:"contentType,omitempty"` // detected content tag, e.g. "quiz-question"
	Correct     *bool  `json:"correct,omitempty"`
	Attempt     int    `json:"attempt,omitempty"`
	Persona     string `json:"persona,omitempty"`
}

// CaptureBatch is the import document produced by a live-audit session.
type CaptureBatch struct {
	Captures []Capture `json:"captures"`
}
