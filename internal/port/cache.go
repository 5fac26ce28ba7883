package port

import (
	"context"
	"time"
)

// Cache abstracts the validation report cache. Implementations store
// opaque bytes; the service layer owns (un)marshalling.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
