package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultCacheTTL = 30 * time.Minute
	cacheKeyPrefix  = "careerpath:roadmap:v1"
)

// Cache stores found roadmap views. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, degreeID, specializationID uuid.UUID) (*View, bool, error)
	Set(ctx context.Context, v *View) error
}

type redisCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

func NewRedisCache(rdb goredis.Cmdable, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &redisCache{rdb: rdb, ttl: ttl}
}

func cacheKey(degreeID, specializationID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, degreeID, specializationID)
}

func (c *redisCache) Get(ctx context.Context, degreeID, specializationID uuid.UUID) (*View, bool, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(degreeID, specializationID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var v View
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("decode cached roadmap: %w", err)
	}
	return &v, true, nil
}

func (c *redisCache) Set(ctx context.Context, v *View) error {
	if v == nil || v.Degree == nil || v.Specialization == nil {
		return errors.New("cache roadmap: incomplete view")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}
	return c.rdb.Set(ctx, cacheKey(v.Degree.ID, v.Specialization.ID), raw, c.ttl).Err()
}
