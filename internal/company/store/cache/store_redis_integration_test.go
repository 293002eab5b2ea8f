//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/store/cache"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	"github.com/OpenDiscoveryBiz/dk-provider/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *cache.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = cache.NewRedisStore(s.redis.Client, cache.DefaultTTL)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRecordRoundTrip() {
	ctx := context.Background()

	record := &erst.Record{
		CVRNummer: 12345678,
		Navne: []erst.Navn{
			{Navn: "Redis ApS", Periode: &erst.Periode{GyldigFra: "2010-01-01"}},
		},
	}

	s.Require().NoError(s.store.SaveRecord(ctx, 12345678, record))

	got, found, err := s.store.Get(ctx, 12345678)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(int64(12345678), got.CVRNummer)
	s.Require().Len(got.Navne, 1)
	s.Equal("Redis ApS", got.Navne[0].Navn)
}

func (s *RedisStoreSuite) TestMissOnUnknownKey() {
	_, found, err := s.store.Get(context.Background(), 42)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RedisStoreSuite) TestNegativeMarker() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveNegative(ctx, 999))

	record, found, err := s.store.Get(ctx, 999)
	s.Require().NoError(err)
	s.True(found, "negative marker must count as a hit")
	s.Nil(record)
}

func (s *RedisStoreSuite) TestEntriesExpire() {
	ctx := context.Background()
	short := cache.NewRedisStore(s.redis.Client, 1*time.Second)

	s.Require().NoError(short.SaveNegative(ctx, 7))

	time.Sleep(1500 * time.Millisecond)

	_, found, err := short.Get(ctx, 7)
	s.Require().NoError(err)
	s.False(found)
}
