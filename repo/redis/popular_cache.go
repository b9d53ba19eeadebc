// File: repo/redis/popular_cache.go
package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
)

// PopularCache 维护热门产品快照。
// - 全量排行 (view_rank:product) 随每次浏览实时变化。
// - 定时任务用 Lua 截取前 N 名生成快照 (popular_products)，前台读取快照，避免排行抖动。
type PopularCache interface {
	// RefreshPopular 原子地用全量排行的前 n 名覆盖快照，返回快照中的成员数。
	RefreshPopular(ctx context.Context, n int) (int, error)
	// GetPopularIDs 按浏览量降序返回快照中的前 limit 个产品 ID，快照为空时返回空切片。
	GetPopularIDs(ctx context.Context, limit int) ([]uint64, error)
	// RankSize 返回全量排行的成员数。
	RankSize(ctx context.Context, kind constant.ViewKind) (int64, error)
	// SeedRank 用数据库中的浏览量初始化排行，已存在的成员不覆盖。
	SeedRank(ctx context.Context, kind constant.ViewKind, scores map[uint64]int64) error
	// RemoveFromRank 产品删除或下架后从排行和快照中移除。
	RemoveFromRank(ctx context.Context, kind constant.ViewKind, id uint64) error
}

type popularCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewPopularCache(redisClient *redis.Client, logger *zap.Logger) PopularCache {
	return &popularCache{redisClient: redisClient, logger: logger}
}

// snapshotScript
// KEYS[1]: 源 ZSet（全量排行）  KEYS[2]: 目标 ZSet（快照）  ARGV[1]: 截取数量
// ZREVRANGE WITHSCORES 返回 {member, score, ...}，ZADD 需要 {score, member, ...}
var snapshotScript = redis.NewScript(`
	local items = redis.call("ZREVRANGE", KEYS[1], 0, tonumber(ARGV[1]) - 1, "WITHSCORES")
	redis.call("DEL", KEYS[2])
	if #items > 0 then
		local args = {}
		for i = 1, #items, 2 do
			table.insert(args, items[i + 1])
			table.insert(args, items[i])
		end
		redis.call("ZADD", KEYS[2], unpack(args))
	end
	return #items / 2
`)

func (c *popularCache) RefreshPopular(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		c.logger.Info("热门快照大小小于等于 0，跳过", zap.Int("n", n))
		return 0, nil
	}
	source := RankKey(constant.ViewKindProduct)
	count, err := snapshotScript.Run(ctx, c.redisClient, []string{source, constant.PopularProductsKey}, n).Int()
	if err != nil {
		c.logger.Error("执行 Lua 脚本生成热门快照失败",
			zap.String("sourceKey", source),
			zap.String("destinationKey", constant.PopularProductsKey),
			zap.Int("n", n),
			zap.Error(err),
		)
		return 0, fmt.Errorf("生成热门产品快照 (Top %d) 失败: %w", n, err)
	}
	c.logger.Info("热门产品快照已更新", zap.Int("size", count))
	return count, nil
}

func (c *popularCache) GetPopularIDs(ctx context.Context, limit int) ([]uint64, error) {
	if limit <= 0 {
		return []uint64{}, nil
	}
	members, err := c.redisClient.ZRevRange(ctx, constant.PopularProductsKey, 0, int64(limit-1)).Result()
	if err != nil {
		c.logger.Error("读取热门产品快照失败", zap.Error(err))
		return nil, fmt.Errorf("读取热门产品快照失败: %w", err)
	}
	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, parseErr := strconv.ParseUint(m, 10, 64)
		if parseErr != nil {
			c.logger.Warn("热门快照成员不是合法 ID，已跳过", zap.String("member", m))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *popularCache) RankSize(ctx context.Context, kind constant.ViewKind) (int64, error) {
	return c.redisClient.ZCard(ctx, RankKey(kind)).Result()
}

func (c *popularCache) SeedRank(ctx context.Context, kind constant.ViewKind, scores map[uint64]int64) error {
	if len(scores) == 0 {
		return nil
	}
	members := make([]redis.Z, 0, len(scores))
	for id, score := range scores {
		members = append(members, redis.Z{Score: float64(score), Member: strconv.FormatUint(id, 10)})
	}
	if err := c.redisClient.ZAddNX(ctx, RankKey(kind), members...).Err(); err != nil {
		c.logger.Error("初始化浏览排行失败", zap.String("kind", string(kind)), zap.Error(err))
		return fmt.Errorf("初始化浏览排行失败: %w", err)
	}
	return nil
}

func (c *popularCache) RemoveFromRank(ctx context.Context, kind constant.ViewKind, id uint64) error {
	member := strconv.FormatUint(id, 10)
	pipe := c.redisClient.TxPipeline()
	pipe.ZRem(ctx, RankKey(kind), member)
	if kind == constant.ViewKindProduct {
		pipe.ZRem(ctx, constant.PopularProductsKey, member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("从排行移除 %s:%d 失败: %w", kind, id, err)
	}
	return nil
}
