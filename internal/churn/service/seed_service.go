package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/generator"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
)

const (
	seedLockKey = "churn:seed:lock"
	seedLockTTL = 10 * time.Minute
)

// ErrSeedInProgress is returned when another seed run holds the lock.
var ErrSeedInProgress = errors.New("a seed run is already in progress")

// SeedService orchestrates synthetic data generation. The seed lock only
// guards against concurrent reseed requests; generation itself is a
// single sequential batch.
type SeedService struct {
	dataset *repository.DatasetRepository
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewSeedService(dataset *repository.DatasetRepository, rdb *redis.Client, logger *zap.Logger) *SeedService {
	return &SeedService{dataset: dataset, rdb: rdb, logger: logger}
}

type SeedOptions struct {
	Customers int   `json:"customers"`
	Seed      int64 `json:"seed"`
	Wipe      bool  `json:"wipe"`
}

// Run generates and inserts a dataset. With Wipe set the existing rows are
// deleted first; without it, customers colliding on email are silently
// skipped along with their dependent rows.
func (s *SeedService) Run(ctx context.Context, opts SeedOptions) (*repository.TableCounts, error) {
	unlock, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if opts.Customers <= 0 {
		opts.Customers = generator.DefaultCustomerCount
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	gen := generator.New(opts.Seed)
	ds := gen.Generate(opts.Customers)

	s.logger.Info("Generated synthetic dataset",
		zap.Int("customers", len(ds.Customers)),
		zap.Int("subscriptions", len(ds.Subscriptions)),
		zap.Int("usage_metrics", len(ds.UsageMetrics)),
		zap.Int("payments", len(ds.Payments)),
		zap.Int64("seed", opts.Seed),
	)

	if opts.Wipe {
		if err := s.dataset.Wipe(); err != nil {
			return nil, fmt.Errorf("wipe existing data: %w", err)
		}
	}

	if err := s.dataset.InsertDataset(ds); err != nil {
		return nil, fmt.Errorf("insert dataset: %w", err)
	}

	return s.dataset.Counts()
}

// acquireLock takes the Redis seed lock. Without a Redis client the lock
// degrades to a no-op, which is fine for the single-process CLI seeder.
func (s *SeedService) acquireLock(ctx context.Context) (func(), error) {
	if s.rdb == nil {
		return func() {}, nil
	}

	ok, err := s.rdb.SetNX(ctx, seedLockKey, time.Now().Format(time.RFC3339), seedLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire seed lock: %w", err)
	}
	if !ok {
		return nil, ErrSeedInProgress
	}
	return func() {
		s.rdb.Del(context.Background(), seedLockKey)
	}, nil
}
