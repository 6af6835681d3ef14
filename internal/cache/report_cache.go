package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"learnlens/internal/model"
)

// Reports are write-once, so cached copies can never be stale; the TTL
// only bounds memory for reports nobody opens anymore.
const reportTTL = time.Hour

// ReportCache is the read cache in front of the report store.
type ReportCache interface {
	Set(ctx context.Context, report *model.Report) error
	Get(ctx context.Context, id string) (*model.Report, error)
}

type reportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
	}
}

func (c *reportCache) Set(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:"+report.ID, data, reportTTL).Err()
}

func (c *reportCache) Get(ctx context.Context, id string) (*model.Report, error) {
	data, err := c.client.Get(ctx, "report:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
