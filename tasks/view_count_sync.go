package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	"github.com/Xushengqwer/trade_site/repo/redis"
)

// syncKinds 需要回写浏览量的实体类型
var syncKinds = []constant.ViewKind{constant.ViewKindProduct, constant.ViewKindBlog}

// ProductCacheInvalidator 清除产品详情缓存，由 service.ProductService 实现。
type ProductCacheInvalidator interface {
	InvalidateDetailCache(ctx context.Context, ids []uint64) error
}

// ViewCountSyncTask 定时把 Redis 中累积的产品/文章浏览增量写回 MySQL。
type ViewCountSyncTask struct {
	viewRepo     redis.ViewCounterRepository
	batchRepo    mysql.ViewCountBatchRepository
	productCache ProductCacheInvalidator // 可为 nil
	cron         *cron.Cron
	logger       *zap.Logger
}

// NewViewCountSyncTask 初始化并启动浏览量同步的定时任务。
func NewViewCountSyncTask(
	viewRepo redis.ViewCounterRepository,
	batchRepo mysql.ViewCountBatchRepository,
	productCache ProductCacheInvalidator,
	logger *zap.Logger,
) *ViewCountSyncTask {
	task := newViewCountSyncTask(viewRepo, batchRepo, productCache, logger)
	task.startCronJob()
	return task
}

func newViewCountSyncTask(viewRepo redis.ViewCounterRepository, batchRepo mysql.ViewCountBatchRepository, productCache ProductCacheInvalidator, logger *zap.Logger) *ViewCountSyncTask {
	return &ViewCountSyncTask{
		viewRepo:     viewRepo,
		batchRepo:    batchRepo,
		productCache: productCache,
		cron:         cron.New(),
		logger:       logger,
	}
}

func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval
	t.logger.Info("准备启动浏览量同步定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncAll(ctx)

		t.logger.Info("浏览量同步任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加浏览量同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("浏览量同步定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

func (t *ViewCountSyncTask) syncAll(ctx context.Context) {
	for _, kind := range syncKinds {
		t.syncKind(ctx, kind)
	}
}

// syncKind 取走 Redis 中的增量并写入数据库；写入失败的增量放回 Redis，下一轮重试。
func (t *ViewCountSyncTask) syncKind(ctx context.Context, kind constant.ViewKind) {
	deltas, err := t.viewRepo.DrainViewCounts(ctx, kind)
	if err != nil {
		t.logger.Error("从 Redis 取出浏览增量失败，本次同步中止", zap.String("kind", string(kind)), zap.Error(err))
		// 部分取出的增量也要放回
		if len(deltas) > 0 {
			t.restore(ctx, kind, deltas)
		}
		return
	}
	if len(deltas) == 0 {
		return
	}

	failed, err := t.batchRepo.BatchIncrementViewCounts(ctx, kind, deltas)
	if err != nil {
		t.logger.Error("浏览量写回数据库部分失败",
			zap.String("kind", string(kind)),
			zap.Int("提交数量", len(deltas)),
			zap.Int("失败数量", len(failed)),
			zap.Error(err),
		)
	}
	if len(failed) > 0 {
		t.restore(ctx, kind, failed)
	}
	if kind == constant.ViewKindProduct {
		t.invalidateProducts(ctx, deltas, failed)
	}
	t.logger.Info("浏览量写回完成",
		zap.String("kind", string(kind)),
		zap.Int("提交数量", len(deltas)),
		zap.Int("失败数量", len(failed)),
	)
}

// invalidateProducts 清除已写回产品的详情缓存，写回失败的保留。
func (t *ViewCountSyncTask) invalidateProducts(ctx context.Context, deltas, failed map[uint64]int64) {
	if t.productCache == nil {
		return
	}
	ids := make([]uint64, 0, len(deltas))
	for id := range deltas {
		if _, ok := failed[id]; !ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := t.productCache.InvalidateDetailCache(ctx, ids); err != nil {
		t.logger.Warn("清除产品详情缓存失败，浏览量将在缓存过期后更正", zap.Int("数量", len(ids)), zap.Error(err))
	}
}

func (t *ViewCountSyncTask) restore(ctx context.Context, kind constant.ViewKind, deltas map[uint64]int64) {
	if err := t.viewRepo.RestoreViewCounts(ctx, kind, deltas); err != nil {
		t.logger.Error("浏览增量放回 Redis 失败，这部分浏览量将丢失",
			zap.String("kind", string(kind)), zap.Int("数量", len(deltas)), zap.Error(err))
	}
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止浏览量同步定时任务...")
	return t.cron.Stop()
}
