package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/garland3/congenial-disco/internal/model"
)

// TemplateCache caches immutable-in-practice template schemas.
// Templates change rarely, so a longer TTL is fine; updates and
// deactivations invalidate the entry explicitly.
type TemplateCache interface {
	Set(ctx context.Context, template *model.InterviewTemplate) error
	Get(ctx context.Context, id string) (*model.InterviewTemplate, error)
	Delete(ctx context.Context, id string) error
}

type templateCache struct {
	client *redis.Client
}

// NewTemplateCache creates a new template cache
func NewTemplateCache(client *redis.Client) TemplateCache {
	return &templateCache{
		client: client,
	}
}

func (c *templateCache) Set(ctx context.Context, template *model.InterviewTemplate) error {
	data, err := json.Marshal(template)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "template:"+template.ID, data, 30*time.Minute).Err()
}

func (c *templateCache) Get(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	data, err := c.client.Get(ctx, "template:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var template model.InterviewTemplate
	if err := json.Unmarshal([]byte(data), &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *templateCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "template:"+id).Err()
}
