// Package resolver orchestrates cache lookup, upstream search on miss, cache
// population, and integrity checks on what the index returned.
package resolver

import (
	"context"
	"log/slog"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/metrics"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/store/cache"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// ErrNotFound is returned when the registry has no company for the id,
// whether answered from the negative cache or from the index itself.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "no matching company")

type Resolver struct {
	cache  cache.Store
	search erst.Searcher
	logger *slog.Logger
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func New(store cache.Store, search erst.Searcher, opts ...Option) *Resolver {
	r := &Resolver{
		cache:  store,
		search: search,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the raw registry record for localID, or ErrNotFound.
// Concurrent misses for the same id may each hit the upstream once; the
// fetched data is idempotent so the duplicate write is harmless.
func (r *Resolver) Resolve(ctx context.Context, localID uint64) (*erst.Record, error) {
	record, found, err := r.cache.Get(ctx, localID)
	if err != nil {
		// The cache only bounds upstream load; when it misbehaves we degrade
		// to a miss rather than failing the lookup.
		r.logger.Warn("cache get failed", "localId", localID, "error", err)
	}
	if found {
		if record == nil {
			metrics.CacheNegativeHit()
			return nil, ErrNotFound
		}
		metrics.CacheHit()
		return record, nil
	}
	metrics.CacheMiss()

	result, err := r.search.SearchByLocalID(ctx, localID)
	if err != nil {
		metrics.UpstreamError()
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamDown, "search upstream registry")
	}

	switch result.Total {
	case 0:
		if err := r.cache.SaveNegative(ctx, localID); err != nil {
			r.logger.Warn("cache negative save failed", "localId", localID, "error", err)
		}
		return nil, ErrNotFound
	case 1:
		if len(result.Records) != 1 {
			return nil, dErrors.New(dErrors.CodeDataIntegrity, "upstream reported one hit but returned none")
		}
		record := result.Records[0]
		if record.CVRNummer != int64(localID) {
			return nil, dErrors.Newf(dErrors.CodeDataIntegrity,
				"upstream returned wrong company: asked %d, got %d", localID, record.CVRNummer)
		}
		if err := r.cache.SaveRecord(ctx, localID, record); err != nil {
			r.logger.Warn("cache save failed", "localId", localID, "error", err)
		}
		return record, nil
	default:
		// A CVR number is unique upstream; more than one hit is never
		// silently picked from.
		return nil, dErrors.Newf(dErrors.CodeDataIntegrity, "id matched %d companies", result.Total)
	}
}
