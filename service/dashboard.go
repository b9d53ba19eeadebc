package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/repo/mysql"
)

// dashboardTopProducts 后台首页展示的浏览量最高产品数
const dashboardTopProducts = 5

// DashboardService 后台首页统计
type DashboardService interface {
	Stats(ctx context.Context) (*vo.DashboardVO, error)
}

type dashboardService struct {
	productRepo     mysql.ProductRepository
	postRepo        mysql.BlogPostRepository
	messageRepo     mysql.MessageRepository
	opportunityRepo mysql.ContentOpportunityRepository
	taskRepo        mysql.SEOTaskRepository
	logger          *zap.Logger
}

func NewDashboardService(
	productRepo mysql.ProductRepository,
	postRepo mysql.BlogPostRepository,
	messageRepo mysql.MessageRepository,
	opportunityRepo mysql.ContentOpportunityRepository,
	taskRepo mysql.SEOTaskRepository,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		productRepo:     productRepo,
		postRepo:        postRepo,
		messageRepo:     messageRepo,
		opportunityRepo: opportunityRepo,
		taskRepo:        taskRepo,
		logger:          logger,
	}
}

// Stats 并发执行各项统计查询，任一失败即整体失败。
// 每个 goroutine 只写自己的字段，Wait 返回后再汇总，无需加锁。
func (s *dashboardService) Stats(ctx context.Context) (*vo.DashboardVO, error) {
	var (
		productCounts map[entities.ProductStatus]int64
		postCounts    map[entities.PostStatus]int64
		messageCounts map[entities.MessageStatus]int64
		unread        int64
		openOpps      int64
		openTasks     int64
		top           []*entities.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productCounts, err = s.productRepo.CountByStatus(gctx)
		return wrapStat("产品状态统计", err)
	})
	g.Go(func() (err error) {
		postCounts, err = s.postRepo.CountByStatus(gctx)
		return wrapStat("文章状态统计", err)
	})
	g.Go(func() (err error) {
		messageCounts, err = s.messageRepo.CountByStatus(gctx)
		return wrapStat("询盘状态统计", err)
	})
	g.Go(func() (err error) {
		unread, err = s.messageRepo.CountUnread(gctx)
		return wrapStat("未读询盘统计", err)
	})
	g.Go(func() (err error) {
		openOpps, err = s.opportunityRepo.CountByStatus(gctx, entities.OpportunityStatusOpen)
		return wrapStat("内容机会统计", err)
	})
	g.Go(func() (err error) {
		openTasks, err = s.taskRepo.CountOpen(gctx)
		return wrapStat("SEO 任务统计", err)
	})
	g.Go(func() (err error) {
		top, err = s.productRepo.TopViewed(gctx, dashboardTopProducts)
		return wrapStat("热门产品查询", err)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("后台统计失败", zap.Error(err))
		return nil, err
	}

	stats := &vo.DashboardVO{
		ProductsByStatus:  make(map[string]int64, len(productCounts)),
		PublishedPosts:    postCounts[entities.PostStatusPublished],
		MessagesByStatus:  make(map[string]int64, len(messageCounts)),
		UnreadMessages:    unread,
		OpenOpportunities: openOpps,
		OpenSEOTasks:      openTasks,
		TopProducts:       vo.NewProductSummaryVOs(top),
	}
	for st, n := range productCounts {
		stats.ProductsByStatus[string(st)] = n
	}
	for st, n := range messageCounts {
		stats.MessagesByStatus[string(st)] = n
	}
	return stats, nil
}

func wrapStat(name string, err error) error {
	if err != nil {
		return fmt.Errorf("%s失败: %w", name, err)
	}
	return nil
}
