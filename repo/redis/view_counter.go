package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
)

// ViewCounterRepository 产品与博客文章浏览量的 Redis 计数。
// - 浏览先累计在 Redis 的待回写计数器中，由定时任务取走并批量写入 MySQL。
// - 同一访客在 constant.ViewDedupeTTL 内重复浏览只计一次。
type ViewCounterRepository interface {
	// RecordView 记录一次浏览，返回本次是否被计数。
	// - visitor 为空时不做去重。
	// - 计数器与排行 ZSet 在同一个 Lua 脚本内更新，保证原子性。
	RecordView(ctx context.Context, kind constant.ViewKind, id uint64, visitor string) (bool, error)

	// DrainViewCounts 使用 SCAN 遍历待回写计数器，并原子地读取后删除。
	// 返回 ID -> 增量；取走后 Redis 中不再保留这些增量。
	DrainViewCounts(ctx context.Context, kind constant.ViewKind) (map[uint64]int64, error)

	// RestoreViewCounts 把回写失败的增量加回计数器，等待下一轮同步。
	RestoreViewCounts(ctx context.Context, kind constant.ViewKind, deltas map[uint64]int64) error

	// PendingViewCount 返回某个实体尚未回写的增量，详情页展示时与数据库值相加。
	PendingViewCount(ctx context.Context, kind constant.ViewKind, id uint64) (int64, error)
}

type viewCounterRepository struct {
	redisClient *redis.Client
	logger      *zap.Logger
	viewSyncCfg config.ViewSyncConfig
}

func NewViewCounterRepository(redisClient *redis.Client, logger *zap.Logger, viewSyncCfg config.ViewSyncConfig) ViewCounterRepository {
	return &viewCounterRepository{
		redisClient: redisClient,
		logger:      logger,
		viewSyncCfg: viewSyncCfg,
	}
}

// recordViewScript 计数器加一并同步累加排行分数
// KEYS[1]: 待回写计数器  KEYS[2]: 排行 ZSet  ARGV[1]: 实体 ID
var recordViewScript = redis.NewScript(`
	local pending = redis.call("INCR", KEYS[1])
	redis.call("ZINCRBY", KEYS[2], 1, ARGV[1])
	return pending
`)

// drainScript 逐个 GET 后 DEL，返回与 KEYS 一一对应的值
var drainScript = redis.NewScript(`
	local values = {}
	for i, key in ipairs(KEYS) do
		local v = redis.call("GET", key)
		if v then
			redis.call("DEL", key)
			values[i] = v
		else
			values[i] = ""
		end
	end
	return values
`)

func counterPrefix(kind constant.ViewKind) string {
	return constant.ViewCountPrefix + string(kind) + ":"
}

func counterKey(kind constant.ViewKind, id uint64) string {
	return counterPrefix(kind) + strconv.FormatUint(id, 10)
}

func dedupeKey(kind constant.ViewKind, id uint64, visitor string) string {
	return fmt.Sprintf("%s%s:%d:%s", constant.ViewDedupePrefix, kind, id, visitor)
}

// RankKey 返回某类实体的全量浏览排行 Key。
func RankKey(kind constant.ViewKind) string {
	return constant.RankPrefix + string(kind)
}

func (r *viewCounterRepository) RecordView(ctx context.Context, kind constant.ViewKind, id uint64, visitor string) (bool, error) {
	if visitor != "" {
		fresh, err := r.redisClient.SetNX(ctx, dedupeKey(kind, id, visitor), 1, constant.ViewDedupeTTL).Result()
		if err != nil {
			r.logger.Error("写入访客去重标记失败", zap.String("kind", string(kind)), zap.Uint64("id", id), zap.Error(err))
			return false, fmt.Errorf("访客去重失败 (%s:%d): %w", kind, id, err)
		}
		if !fresh {
			r.logger.Debug("访客在去重窗口内重复浏览，跳过计数", zap.String("kind", string(kind)), zap.Uint64("id", id))
			return false, nil
		}
	}

	keys := []string{counterKey(kind, id), RankKey(kind)}
	if err := recordViewScript.Run(ctx, r.redisClient, keys, id).Err(); err != nil {
		r.logger.Error("Lua 脚本执行失败：增加浏览量和更新排行", zap.String("kind", string(kind)), zap.Uint64("id", id), zap.Error(err))
		return false, fmt.Errorf("原子性增加浏览量失败 (%s:%d): %w", kind, id, err)
	}
	return true, nil
}

func (r *viewCounterRepository) DrainViewCounts(ctx context.Context, kind constant.ViewKind) (map[uint64]int64, error) {
	prefix := counterPrefix(kind)
	matchPattern := prefix + "*"
	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
	}

	counts := make(map[uint64]int64)
	start := time.Now()
	var cursor uint64
	for {
		keys, next, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 失败", zap.String("pattern", matchPattern), zap.Error(err))
			return counts, fmt.Errorf("扫描浏览量计数器失败 (模式: %s): %w", matchPattern, err)
		}
		if len(keys) > 0 {
			if err := r.drainKeys(ctx, prefix, keys, counts); err != nil {
				// 已取走的增量随返回值交给调用方，避免丢失
				return counts, err
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("取走待回写浏览量",
		zap.String("kind", string(kind)),
		zap.Int("实体数", len(counts)),
		zap.Duration("耗时", time.Since(start)),
	)
	return counts, nil
}

func (r *viewCounterRepository) drainKeys(ctx context.Context, prefix string, keys []string, into map[uint64]int64) error {
	res, err := drainScript.Run(ctx, r.redisClient, keys).Slice()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Error("Lua 脚本执行失败：取走浏览量计数器", zap.Int("keys", len(keys)), zap.Error(err))
		return fmt.Errorf("取走浏览量计数器失败 (%d keys): %w", len(keys), err)
	}
	for i, key := range keys {
		if i >= len(res) {
			break
		}
		raw, _ := res[i].(string)
		if raw == "" {
			continue
		}
		id, parseErr := strconv.ParseUint(strings.TrimPrefix(key, prefix), 10, 64)
		if parseErr != nil {
			r.logger.Error("从 Redis Key 解析实体 ID 失败，已跳过", zap.String("key", key), zap.Error(parseErr))
			continue
		}
		n, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			r.logger.Error("解析浏览量计数失败，已跳过", zap.String("key", key), zap.String("value", raw), zap.Error(parseErr))
			continue
		}
		into[id] += n
	}
	return nil
}

func (r *viewCounterRepository) RestoreViewCounts(ctx context.Context, kind constant.ViewKind, deltas map[uint64]int64) error {
	if len(deltas) == 0 {
		return nil
	}
	pipe := r.redisClient.Pipeline()
	for id, d := range deltas {
		if d != 0 {
			pipe.IncrBy(ctx, counterKey(kind, id), d)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("放回浏览量增量失败", zap.String("kind", string(kind)), zap.Int("实体数", len(deltas)), zap.Error(err))
		return fmt.Errorf("放回浏览量增量失败: %w", err)
	}
	r.logger.Warn("回写失败的浏览量已放回 Redis", zap.String("kind", string(kind)), zap.Int("实体数", len(deltas)))
	return nil
}

func (r *viewCounterRepository) PendingViewCount(ctx context.Context, kind constant.ViewKind, id uint64) (int64, error) {
	n, err := r.redisClient.Get(ctx, counterKey(kind, id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
