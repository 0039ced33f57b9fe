// FILE: internal/repository/sheets/cached.go
package sheets

import (
	"context"
	"time"

	"salesdesk-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// CachedRepository is a read-through decorator keyed by range. A page burst
// (several users opening the matrix at once) then costs one quota hit per TTL
// window instead of one per visit. Transformation still runs per request, so
// consumers never share mutable state.
type CachedRepository struct {
	inner contract.SheetRepository
	cache *cache.Cache
}

func NewCachedRepository(inner contract.SheetRepository, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *CachedRepository) Values(ctx context.Context, a1Range string) ([][]string, error) {
	if x, found := r.cache.Get(a1Range); found {
		return x.([][]string), nil
	}

	values, err := r.inner.Values(ctx, a1Range)
	if err != nil {
		// Errors are not cached: the next visit retries.
		return nil, err
	}

	r.cache.Set(a1Range, values, cache.DefaultExpiration)
	return values, nil
}
