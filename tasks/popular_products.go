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

// PopularProductsTask 定时把全量浏览排行的前 N 名复制为热门快照，供 /products/popular 读取。
type PopularProductsTask struct {
	popular     redis.PopularCache
	productRepo mysql.ProductRepository
	cron        *cron.Cron
	logger      *zap.Logger
}

// NewPopularProductsTask 初始化并启动热门产品快照任务，启动时先执行一次。
func NewPopularProductsTask(popular redis.PopularCache, productRepo mysql.ProductRepository, logger *zap.Logger) *PopularProductsTask {
	task := newPopularProductsTask(popular, productRepo, logger)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		task.refresh(ctx)
	}()
	task.startCronJob()
	return task
}

func newPopularProductsTask(popular redis.PopularCache, productRepo mysql.ProductRepository, logger *zap.Logger) *PopularProductsTask {
	return &PopularProductsTask{
		popular:     popular,
		productRepo: productRepo,
		cron:        cron.New(),
		logger:      logger,
	}
}

func (t *PopularProductsTask) startCronJob() {
	schedule := constant.PopularProductsCronSpec
	t.logger.Info("准备启动热门产品快照定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		t.refresh(ctx)
	})
	if err != nil {
		t.logger.Fatal("添加热门产品快照 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门产品快照定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refresh 排行为空（例如 Redis 被清空）时先用数据库浏览量初始化，再生成快照。
func (t *PopularProductsTask) refresh(ctx context.Context) {
	size, err := t.popular.RankSize(ctx, constant.ViewKindProduct)
	if err != nil {
		t.logger.Error("读取产品浏览排行失败", zap.Error(err))
		return
	}
	if size == 0 {
		t.seedFromDB(ctx)
	}

	n, err := t.popular.RefreshPopular(ctx, constant.PopularProductsSize)
	if err != nil {
		t.logger.Error("刷新热门产品快照失败", zap.Error(err))
		return
	}
	t.logger.Info("热门产品快照已刷新", zap.Int("count", n))
}

func (t *PopularProductsTask) seedFromDB(ctx context.Context) {
	top, err := t.productRepo.TopViewed(ctx, constant.PopularProductsSize)
	if err != nil {
		t.logger.Error("从数据库读取浏览量排行失败", zap.Error(err))
		return
	}
	scores := make(map[uint64]int64, len(top))
	for _, p := range top {
		if p.ViewCount > 0 {
			scores[p.ID] = p.ViewCount
		}
	}
	if len(scores) == 0 {
		return
	}
	if err := t.popular.SeedRank(ctx, constant.ViewKindProduct, scores); err != nil {
		t.logger.Error("初始化产品浏览排行失败", zap.Error(err))
		return
	}
	t.logger.Info("已用数据库浏览量初始化产品排行", zap.Int("count", len(scores)))
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭。
func (t *PopularProductsTask) Stop() context.Context {
	t.logger.Info("正在停止热门产品快照定时任务...")
	return t.cron.Stop()
}
