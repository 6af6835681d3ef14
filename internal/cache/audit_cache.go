package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"learnlens/internal/model"
)

// auditTTL bounds how long an abandoned audit session survives. Every
// write refreshes it, so active audits never expire mid-flow.
const auditTTL = 24 * time.Hour

// AuditCache stores in-progress audit sessions. Each audit is owned by
// exactly one session; there is no cross-audit state.
type AuditCache interface {
	Set(ctx context.Context, audit *model.Audit) error
	Get(ctx context.Context, id string) (*model.Audit, error)
	Delete(ctx context.Context, id string) error
}

type auditCache struct {
	client *redis.Client
}

func NewAuditCache(client *redis.Client) AuditCache {
	return &auditCache{
		client: client,
	}
}

func (c *auditCache) Set(ctx context.Context, audit *model.Audit) error {
	data, err := json.Marshal(audit)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "audit:"+audit.ID, data, auditTTL).Err()
}

func (c *auditCache) Get(ctx context.Context, id string) (*model.Audit, error) {
	data, err := c.client.Get(ctx, "audit:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var audit model.Audit
	if err := json.Unmarshal([]byte(data), &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

func (c *auditCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "audit:"+id).Err()
}
