package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"learnlens/internal/model"
)

// ReportRepo handles MongoDB operations for published reports. Reports are
// write-once: Insert never upserts, and no update path exists.
type ReportRepo interface {
	Insert(ctx context.Context, report *model.Report) error
	Get(ctx context.Context, id string) (*model.Report, error)
}

type reportRepo struct {
	reports *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		reports: db.Collection("reports"),
	}
}

func (r *reportRepo) Insert(ctx context.Context, report *model.Report) error {
	_, err := r.reports.InsertOne(ctx, report)
	return err
}

func (r *reportRepo) Get(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	err := r.reports.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
