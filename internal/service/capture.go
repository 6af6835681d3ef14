package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"learnlens/internal/model"
)

// ImportCaptures turns a live-audit capture export into a new section of
// the audit. Only the image bytes are consumed; correctness, attempt and
// persona tags ride along in the export but mean nothing to the pipeline.
func (s *AuditService) ImportCaptures(ctx context.Context, auditID, sectionName string, batch model.CaptureBatch) (*model.Audit, error) {
	if sectionName == "" {
		return nil, &model.ValidationError{Reason: "section name is required for capture import"}
	}
	if len(batch.Captures) == 0 {
		return nil, &model.ValidationError{Reason: "import document has no captures"}
	}
	if len(batch.Captures) > s.oracle.MaxImages() {
		return nil, &model.ValidationError{
			Reason: fmt.Sprintf("import has %d captures, maximum per section is %d", len(batch.Captures), s.oracle.MaxImages()),
		}
	}

	images := make([]model.ImageBlob, 0, len(batch.Captures))
	for i, capture := range batch.Captures {
		if capture.Image == "" {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("capture %d has no image", i+1)}
		}
		data, err := base64.StdEncoding.DecodeString(capture.Image)
		if err != nil {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("capture %d image is not valid base64", i+1)}
		}
		mediaType := capture.MediaType
		if mediaType == "" {
			mediaType = "image/png"
		}
		images = append(images, model.ImageBlob{Data: data, MediaType: mediaType})
	}

	return s.AddSection(ctx, auditID, model.Section{
		Name:   sectionName,
		Images: images,
	})
}
