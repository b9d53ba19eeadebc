package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
)

// InitRedis 创建 Redis 客户端并 Ping 校验连通性。
func InitRedis(cfg *config.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("Redis 地址 (redisConfig.address) 未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  secondsOr(cfg.DialTimeout, 5),
		ReadTimeout:  secondsOr(cfg.ReadTimeout, 3),
		WriteTimeout: secondsOr(cfg.WriteTimeout, 3),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error("连接 Redis 失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis '%s' 失败: %w", cfg.Address, err)
	}

	logger.Info("Redis 客户端初始化成功", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}

func secondsOr(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
