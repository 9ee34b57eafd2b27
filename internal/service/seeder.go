package service

import (
	"context"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"golang.org/x/sync/singleflight"
)

// seeder inserts a sample set into a collection the first time it is read empty.
// Concurrent first reads inside one process share a single seeding run; separate
// processes can still race and insert the set twice, which is tolerated.
type seeder struct {
	group singleflight.Group
	cache Cache
}

func newSeeder(cache Cache) *seeder {
	return &seeder{cache: cache}
}

// ensure seeds collection via insert when count reports zero documents.
// cachePattern is invalidated after a successful seed.
func (s *seeder) ensure(
	ctx context.Context,
	collection string,
	cachePattern string,
	count func(context.Context) (int64, error),
	insert func(context.Context) (int, error),
) error {
	_, err, _ := s.group.Do(collection, func() (any, error) {
		// The seed must not be cut short by the request that happened to trigger it
		ctx := context.WithoutCancel(ctx)

		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, nil
		}

		inserted, err := insert(ctx)
		if err != nil {
			logger.Log.WithError(err).Errorf("[Seed] ❌ Seeding %s stopped after %d documents", collection, inserted)
			return nil, err
		}
		logger.Log.Infof("[Seed] 🌱 Seeded %d sample documents into %s", inserted, collection)

		if s.cache != nil {
			if err := s.cache.InvalidateCache(ctx, cachePattern); err != nil {
				logger.Log.WithError(err).Warnf("[Seed] Failed to invalidate cache %s", cachePattern)
			}
		}
		return nil, nil
	})
	return err
}
