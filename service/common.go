package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
	"github.com/Xushengqwer/trade_site/myErrors"
)

// EventPublisher 领域事件发布，由 mq/producer.KafkaProducer 实现。
type EventPublisher interface {
	SendMessageReceivedEvent(ctx context.Context, msg *entities.Message) error
	SendProductChangedEvent(ctx context.Context, action events.ProductAction, product *entities.Product) error
}

// eventTimeout 异步发送事件的超时时间
const eventTimeout = 5 * time.Second

// publishAsync 在独立协程中发送事件，失败只记日志，不影响主流程。
func publishAsync(logger *zap.Logger, name string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			logger.Warn("发送领域事件失败", zap.String("event", name), zap.Error(err))
		}
	}()
}

// slugExistsFunc 判断 slug 是否已被 excludeID 以外的记录占用（含软删除记录）。
type slugExistsFunc func(ctx context.Context, slug string, excludeID uint64) (bool, error)

// maxSlugAttempts 自动生成 slug 时追加序号的最大尝试次数
const maxSlugAttempts = 50

// resolveSlug 确定记录的 slug。
// - 显式指定的 slug 只做规范化，被占用时返回 myErrors.ErrSlugTaken。
// - 未指定时由 name 生成，被占用则依次追加 -2、-3 ...
func resolveSlug(ctx context.Context, explicit, name, fallback string, excludeID uint64, exists slugExistsFunc) (string, error) {
	if explicit != "" {
		s := content.Slugify(explicit)
		if s == "" {
			return "", fmt.Errorf("slug %q 规范化后为空: %w", explicit, myErrors.ErrInvalidSlug)
		}
		taken, err := exists(ctx, s, excludeID)
		if err != nil {
			return "", fmt.Errorf("检查 slug 失败: %w", err)
		}
		if taken {
			return "", fmt.Errorf("slug %q: %w", s, myErrors.ErrSlugTaken)
		}
		return s, nil
	}

	base := content.Slugify(name)
	if base == "" {
		base = fallback
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("检查 slug 失败: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return "", fmt.Errorf("无法为 %q 生成可用的 slug: %w", name, myErrors.ErrSlugTaken)
}

// ViewRecorder 浏览计数，由 repo/redis.ViewCounterRepository 实现。
type ViewRecorder interface {
	RecordView(ctx context.Context, kind constant.ViewKind, id uint64, visitor string) (bool, error)
	PendingViewCount(ctx context.Context, kind constant.ViewKind, id uint64) (int64, error)
}

// recordView 记录一次浏览并返回尚未回写数据库的增量；Redis 出错时只记日志。
func recordView(ctx context.Context, views ViewRecorder, logger *zap.Logger, kind constant.ViewKind, id uint64, visitor string) int64 {
	if views == nil {
		return 0
	}
	if _, err := views.RecordView(ctx, kind, id, visitor); err != nil {
		logger.Warn("记录浏览失败", zap.String("kind", string(kind)), zap.Uint64("id", id), zap.Error(err))
	}
	pending, err := views.PendingViewCount(ctx, kind, id)
	if err != nil {
		logger.Warn("读取待回写浏览量失败", zap.String("kind", string(kind)), zap.Uint64("id", id), zap.Error(err))
		return 0
	}
	return pending
}
