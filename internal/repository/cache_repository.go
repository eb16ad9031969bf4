package repository

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository stores serialized simulation results by key.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }
func (NopCache) Set(context.Context, string, string) error   { return nil }
