package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notely/pkg/log"
)

// RateStorage 按分钟窗口统计请求次数，redis 故障时放行
type RateStorage struct {
	rds *redis.Client
}

func NewRateStorage(rds *redis.Client) *RateStorage {
	return &RateStorage{rds: rds}
}

func rateKey(ident, group string, now time.Time) string {
	return fmt.Sprintf("rate:%s_%s:%d", ident, group, now.Unix()/60)
}

// Incr 递增当前窗口计数并返回递增后的值
func (s *RateStorage) Incr(ctx context.Context, ident, group string) (int64, error) {
	key := rateKey(ident, group, time.Now())
	count, err := s.rds.Incr(ctx, key).Result()
	if err != nil {
		log.L.Warn("rate counter incr failed", zap.String("key", key), zap.Error(err))
		return 0, err
	}
	if count == 1 {
		if err := s.rds.Expire(ctx, key, 2*time.Minute).Err(); err != nil {
			log.L.Warn("rate counter expire failed", zap.String("key", key), zap.Error(err))
		}
	}
	return count, nil
}
