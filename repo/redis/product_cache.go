package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
)

// ProductCache 前台产品详情缓存。
// - 缓存的是 vo.ProductVO 的 JSON，浏览量为写入时的快照值。
// - 未命中返回 myErrors.ErrCacheMiss，由上层回源数据库。
type ProductCache interface {
	GetProductDetail(ctx context.Context, slug string) (*vo.ProductVO, error)
	SetProductDetail(ctx context.Context, product *vo.ProductVO) error
	// Invalidate 删除一个或多个 slug 的缓存，产品更新或删除时调用。
	Invalidate(ctx context.Context, slugs ...string) error
}

type productCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewProductCache(redisClient *redis.Client, logger *zap.Logger) ProductCache {
	return &productCache{redisClient: redisClient, logger: logger}
}

func productDetailKey(slug string) string {
	return constant.ProductDetailCachePrefix + slug
}

func (c *productCache) GetProductDetail(ctx context.Context, slug string) (*vo.ProductVO, error) {
	key := productDetailKey(slug)
	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取产品详情缓存失败", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("读取产品详情缓存 (key: %s) 失败: %w", key, err)
	}
	var product vo.ProductVO
	if err := json.Unmarshal(data, &product); err != nil {
		// 缓存数据损坏时删除并按未命中处理
		c.logger.Warn("产品详情缓存数据损坏，已删除", zap.String("key", key), zap.Error(err))
		_ = c.redisClient.Del(ctx, key).Err()
		return nil, myErrors.ErrCacheMiss
	}
	return &product, nil
}

func (c *productCache) SetProductDetail(ctx context.Context, product *vo.ProductVO) error {
	if product == nil || product.Slug == "" {
		return nil
	}
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("序列化产品详情失败: %w", err)
	}
	key := productDetailKey(product.Slug)
	if err := c.redisClient.Set(ctx, key, data, constant.ProductDetailCacheTTL).Err(); err != nil {
		c.logger.Error("写入产品详情缓存失败", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("写入产品详情缓存 (key: %s) 失败: %w", key, err)
	}
	return nil
}

func (c *productCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, productDetailKey(s))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("删除产品详情缓存失败", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("删除产品详情缓存失败: %w", err)
	}
	return nil
}
