package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"learnlens/internal/cache"
	"learnlens/internal/model"
	"learnlens/internal/repository"
)

// ReportService publishes finished audits as shareable reports and serves
// them back by id. Reports are write-once, read-many: publishing mints a
// fresh short id and nothing ever updates a stored report.
type ReportService struct {
	reportRepo  repository.ReportRepo
	reportCache cache.ReportCache
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepo, reportCache cache.ReportCache) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		reportCache: reportCache,
	}
}

// Publish stores the audit's final state under a fresh short id.
func (s *ReportService) Publish(ctx context.Context, audit *model.Audit) (*model.Report, error) {
	if audit.Assessment == nil {
		return nil, &model.ValidationError{Reason: "audit has no assessment to publish"}
	}

	report := &model.Report{
		ID:           shortID(),
		OverallScore: OverallScore(audit.Assessment, audit.Refinement.Refined),
		Ratings:      audit.Assessment.Ratings,
		Refined:      audit.Refinement.Refined,
		Sections:     audit.Results,
		Takeaways:    audit.Takeaways,
		CreatedAt:    time.Now(),
	}

	if err := s.reportRepo.Insert(ctx, report); err != nil {
		return nil, err
	}

	// Cache population is best effort; the store already has the report.
	_ = s.reportCache.Set(ctx, report)

	return report, nil
}

// Fetch loads a report by id, through the read cache.
func (s *ReportService) Fetch(ctx context.Context, id string) (*model.Report, error) {
	if cached, err := s.reportCache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	report, err := s.reportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, &model.NotFoundError{Resource: "report", ID: id}
	}

	_ = s.reportCache.Set(ctx, report)
	return report, nil
}

// shortID derives a URL-friendly 12-character id from a UUID. Reports are
// write-once so collisions surface as duplicate-key insert errors rather
// than silent overwrites.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
