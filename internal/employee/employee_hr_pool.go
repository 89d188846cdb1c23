package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const HRPoolCacheKey = "notification:hr_pool"

// HRPool resolves the mail addresses of every HR-role employee. Results are
// cached in redis when a client is configured.
type HRPool struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewHRPool(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *HRPool {
	l := zap.L().Named("employee.hr_pool")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.hr_pool")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &HRPool{repo: repo, rdb: rdb, ttl: ttl, sf: &singleflight.Group{}, logger: l}
}

func (p *HRPool) Emails(ctx context.Context) ([]string, error) {
	if p.rdb != nil {
		if cached, err := p.rdb.Get(ctx, HRPoolCacheKey).Result(); err == nil {
			var emails []string
			if json.Unmarshal([]byte(cached), &emails) == nil {
				return emails, nil
			}
		} else if err != redis.Nil {
			p.logger.Warn("hr pool cache read failed", zap.Error(err))
		}
	}

	// The fill is shared by every waiter, so one caller's cancellation must not fail the rest.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := p.sf.Do(HRPoolCacheKey, func() (interface{}, error) {
		hr, err := p.repo.FindByRole(fillCtx, RoleHR)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		emails := make([]string, 0, len(hr))
		for _, e := range hr {
			if e.Email != "" {
				emails = append(emails, e.Email)
			}
		}

		if p.rdb != nil {
			if data, err := json.Marshal(emails); err == nil {
				if err := p.rdb.Set(fillCtx, HRPoolCacheKey, data, p.ttl).Err(); err != nil {
					p.logger.Warn("hr pool cache write failed", zap.Error(err))
				}
			}
		}
		return emails, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func (p *HRPool) Invalidate(ctx context.Context) {
	if p.rdb == nil {
		return
	}
	if err := p.rdb.Del(ctx, HRPoolCacheKey).Err(); err != nil {
		p.logger.Error("failed to invalidate hr pool cache",
			zap.String("key", HRPoolCacheKey),
			zap.Error(err),
		)
	}
}
