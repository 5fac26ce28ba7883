package cache

import (
	"context"
	"time"

	"loanlens/internal/port"
)

type noopCache struct{}

// NewNoopCache creates a cache that stores nothing. Every validation
// request recomputes.
func NewNoopCache() port.Cache {
	return &noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }
