package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

// negativeMarker is the cached value for ids the upstream has no company for.
type negativeMarker struct{}

// InMemoryStore is the default single-process cache implementation.
type InMemoryStore struct {
	cache *gocache.Cache
}

// NewInMemoryStore creates an in-process store; pass DefaultTTL unless a test
// needs faster expiry.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *InMemoryStore) Get(_ context.Context, localID uint64) (*erst.Record, bool, error) {
	value, found := s.cache.Get(key(localID))
	if !found {
		return nil, false, nil
	}
	if _, negative := value.(negativeMarker); negative {
		return nil, true, nil
	}
	record, ok := value.(*erst.Record)
	if !ok {
		// Wrong type can only mean a bug in this package; treat as a miss.
		return nil, false, nil
	}
	return record, true, nil
}

func (s *InMemoryStore) SaveRecord(_ context.Context, localID uint64, record *erst.Record) error {
	if record == nil {
		return nil
	}
	s.cache.Set(key(localID), record, gocache.DefaultExpiration)
	return nil
}

func (s *InMemoryStore) SaveNegative(_ context.Context, localID uint64) error {
	s.cache.Set(key(localID), negativeMarker{}, gocache.DefaultExpiration)
	return nil
}
