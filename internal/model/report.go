package model

import "time"

// Report is a persisted, shareable audit result. Reports are write-once:
// published under a fresh short id and never updated afterwards.
type Report struct {
	ID           string                      `json:"id" bson:"_id"`
	OverallScore float64                     `json:"overallScore" bson:"overallScore"`
	Ratings      map[string]AggregatedRating `json:"ratings" bson:"ratings"`
	Refined      map[string]RefinedScore     `json:"refined,omitempty" bson:"refined,omitempty"`
	Sections     []SectionResult             `json:"sections,omitempty" bson:"sections,omitempty"`
	Takeaways    *KeyTakeaways               `json:"takeaways,omitempty" bson:"takeaways,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt" bson:"createdAt"`
}
