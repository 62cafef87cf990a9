package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/redis/go-redis/v9"
)

// ProfileCache is the key-value analog of the browser profile store: one
// entry under a fixed application key, no TTL, no versioning.
type ProfileCache struct{ Redis *redis.Client }

func (c *ProfileCache) Load(ctx context.Context) (*Merchant, error) {
	raw, err := c.Redis.Get(ctx, redisx.KeyProfile).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var m Merchant
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *ProfileCache) Save(ctx context.Context, m Merchant) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, redisx.KeyProfile, raw, 0).Err()
}

func (c *ProfileCache) Delete(ctx context.Context) error {
	return c.Redis.Del(ctx, redisx.KeyProfile).Err()
}
