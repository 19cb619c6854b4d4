package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=vehicle_service.go -destination=mock/vehicle_service_mock.go -package=mock

type Service interface {
	Lookup(ctx context.Context, brand string) ([]Details, error)
}

type service struct {
	sources  []Source
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService queries sources in order of precedence. rdb may be nil, in
// which case every lookup goes upstream.
func NewService(sources []Source, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("vehicle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vehicle.service")
	}
	return &service{
		sources:  sources,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func CacheKey(brand string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(brand))
}

func (s *service) Lookup(ctx context.Context, brand string) ([]Details, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrNameRequired
	}
	rid := contextutil.GetRequestID(ctx)
	key := CacheKey(brand)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var resp []Details
			if json.Unmarshal([]byte(cached), &resp) == nil {
				s.logger.Debug("vehicle cache hit", zap.String("request_id", rid), zap.String("make", brand))
				return resp, nil
			}
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("vehicle cache read failed", zap.String("request_id", rid), zap.Error(err))
		}
	}

	// The shared fetch must outlive a caller that disconnects early.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := s.sf.Do(key, func() (any, error) {
		resp := s.fetch(fetchCtx, brand)
		s.store(fetchCtx, key, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("vehicle lookup shared", zap.String("request_id", rid), zap.String("make", brand))
	}
	return v.([]Details), nil
}

func (s *service) fetch(ctx context.Context, brand string) []Details {
	results := make([][]Model, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			models, err := src.Models(gctx, brand)
			if err != nil {
				s.logger.Warn("vehicle source failed",
					zap.String("source", src.Name()),
					zap.String("make", brand),
					zap.Error(err),
				)
				return nil
			}
			results[i] = models
			return nil
		})
	}
	_ = g.Wait()

	merged := merge(results...)
	out := make([]Details, 0, len(merged))
	for _, m := range merged {
		out = append(out, describe(m))
	}
	return out
}

func (s *service) store(ctx context.Context, key string, resp []Details) {
	if s.rdb == nil || len(resp) == 0 {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, string(payload), s.cacheTTL).Err(); err != nil {
		s.logger.Warn("vehicle cache write failed", zap.String("key", key), zap.Error(err))
	}
}
