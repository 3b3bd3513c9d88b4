package ports

import "context"

// VerdictCache remembers the outcome of checking a payload against a shape.
// Keys are opaque to the cache; the service derives them from the shape name
// and a digest of the payload.
type VerdictCache interface {
	// Get returns the stored verdict and whether one was found.
	Get(ctx context.Context, key string) (valid bool, found bool, err error)

	// Put stores a verdict.
	Put(ctx context.Context, key string, valid bool) error
}
