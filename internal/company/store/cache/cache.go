// Package cache stores raw registry records, keyed by CVR number, to bound
// load on the upstream index. Entries expire after DefaultTTL; misses that
// the upstream confirmed are cached too, as a negative marker.
package cache

import (
	"context"
	"time"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

// DefaultTTL applies to positive and negative entries alike.
const DefaultTTL = 60 * time.Second

// Store is the key/value contract the resolver needs. A found entry with a
// nil record is the negative marker: the upstream recently confirmed the id
// does not exist.
type Store interface {
	Get(ctx context.Context, localID uint64) (record *erst.Record, found bool, err error)
	SaveRecord(ctx context.Context, localID uint64, record *erst.Record) error
	SaveNegative(ctx context.Context, localID uint64) error
}
