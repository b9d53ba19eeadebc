// File: repo/mysql/view_count_batch.go
package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/models/entities"
)

// ViewCountBatchRepository 将 Redis 中累积的浏览增量批量写回数据库。
type ViewCountBatchRepository interface {
	// BatchIncrementViewCounts 按 kind 选择产品表或文章表，执行 view_count = view_count + delta。
	// - 分批并发执行，单个批次失败不影响其他批次。
	// - 返回写入失败的增量（调用方可以放回 Redis 等待下一轮）以及聚合后的错误。
	BatchIncrementViewCounts(ctx context.Context, kind constant.ViewKind, deltas map[uint64]int64) (map[uint64]int64, error)
}

type viewCountBatchRepository struct {
	db          *gorm.DB
	logger      *zap.Logger
	viewSyncCfg config.ViewSyncConfig
}

func NewViewCountBatchRepository(db *gorm.DB, logger *zap.Logger, viewSyncCfg config.ViewSyncConfig) ViewCountBatchRepository {
	return &viewCountBatchRepository{db: db, logger: logger, viewSyncCfg: viewSyncCfg}
}

type viewDelta struct {
	ID    uint64
	Delta int64
}

type batchOutcome struct {
	batch []viewDelta
	err   error
}

func modelForKind(kind constant.ViewKind) (interface{}, error) {
	switch kind {
	case constant.ViewKindProduct:
		return &entities.Product{}, nil
	case constant.ViewKindBlog:
		return &entities.BlogPost{}, nil
	}
	return nil, fmt.Errorf("未知的浏览对象类型: %s", kind)
}

func (r *viewCountBatchRepository) BatchIncrementViewCounts(ctx context.Context, kind constant.ViewKind, deltas map[uint64]int64) (map[uint64]int64, error) {
	total := len(deltas)
	if total == 0 {
		return nil, nil
	}
	model, err := modelForKind(kind)
	if err != nil {
		return deltas, err
	}

	batchSize := r.viewSyncCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	concurrency := r.viewSyncCfg.ConcurrencyLevel
	if concurrency <= 0 {
		concurrency = 1
	}

	items := make([]viewDelta, 0, total)
	for id, d := range deltas {
		if d != 0 {
			items = append(items, viewDelta{ID: id, Delta: d})
		}
	}
	totalBatches := (len(items) + batchSize - 1) / batchSize
	r.logger.Info("开始并发回写浏览量",
		zap.String("kind", string(kind)),
		zap.Int("总数", len(items)),
		zap.Int("批大小", batchSize),
		zap.Int("并发数", concurrency),
		zap.Int("批次数", totalBatches),
	)
	start := time.Now()

	jobs := make(chan []viewDelta, concurrency)
	results := make(chan batchOutcome, totalBatches)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for batch := range jobs {
				if ctx.Err() != nil {
					results <- batchOutcome{batch: batch, err: fmt.Errorf("worker %d: 上下文已取消: %w", workerID, ctx.Err())}
					continue
				}
				results <- batchOutcome{batch: batch, err: r.processBatch(ctx, model, batch, workerID)}
			}
		}(i)
	}

	// 分发批次；上下文取消后未分发的批次也算作失败，交还给调用方
	var undispatched []viewDelta
	go func() {
		defer close(jobs)
		for i := 0; i < len(items); i += batchSize {
			end := i + batchSize
			if end > len(items) {
				end = len(items)
			}
			select {
			case <-ctx.Done():
				undispatched = items[i:]
				return
			case jobs <- items[i:end]:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	failed := make(map[uint64]int64)
	var errs []string
	for res := range results {
		if res.err == nil {
			continue
		}
		errs = append(errs, res.err.Error())
		for _, it := range res.batch {
			failed[it.ID] += it.Delta
		}
	}
	// results 关闭意味着分发协程已结束，可以安全读取 undispatched
	for _, it := range undispatched {
		failed[it.ID] += it.Delta
	}

	r.logger.Info("浏览量回写完成",
		zap.String("kind", string(kind)),
		zap.Duration("总耗时", time.Since(start)),
		zap.Int("失败批次数", len(errs)),
		zap.Int("失败记录数", len(failed)),
	)
	if len(failed) > 0 {
		if len(errs) == 0 {
			errs = append(errs, ctx.Err().Error())
		}
		return failed, fmt.Errorf("浏览量回写部分失败 (%d / %d 个批次): %s", len(errs), totalBatches, strings.Join(errs, "; "))
	}
	return nil, nil
}

// processBatch 用一条 UPDATE ... CASE WHEN 语句更新一个批次。
func (r *viewCountBatchRepository) processBatch(ctx context.Context, model interface{}, batch []viewDelta, workerID int) error {
	ids := make([]uint64, 0, len(batch))
	params := make([]interface{}, 0, len(batch)*2)
	var sqlCase strings.Builder
	sqlCase.WriteString("view_count + CASE id ")
	for _, it := range batch {
		ids = append(ids, it.ID)
		sqlCase.WriteString("WHEN ? THEN ? ")
		params = append(params, it.ID, it.Delta)
	}
	sqlCase.WriteString("ELSE 0 END")

	err := r.db.WithContext(ctx).Model(model).
		Where("id IN ?", ids).
		UpdateColumn("view_count", gorm.Expr(sqlCase.String(), params...)).Error
	if err != nil {
		r.logger.Error("浏览量批次更新失败", zap.Int("workerID", workerID), zap.Int("batchSize", len(batch)), zap.Error(err))
		return fmt.Errorf("worker %d 处理批次 (大小 %d) 失败: %w", workerID, len(batch), err)
	}
	return nil
}
