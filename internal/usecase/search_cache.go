package usecase

import (
	"context"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func cacheGet(ctx context.Context, c SearchCache, key string, out any) bool {
	if c == nil {
		return false
	}
	hit, err := c.GetJSON(ctx, key, out)
	return err == nil && hit
}

func cacheSet(ctx context.Context, c SearchCache, key string, value any) {
	if c == nil {
		return
	}
	_ = c.SetJSON(ctx, key, value, 0)
}
