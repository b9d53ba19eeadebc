package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
)

// FeedPublisher 由 service.FeedService 实现
type FeedPublisher interface {
	Publish(ctx context.Context) ([]string, error)
}

// FeedPublishTask 定时把站点地图与 RSS 上传到对象存储（CDN 回源）。
type FeedPublishTask struct {
	feeds  FeedPublisher
	cron   *cron.Cron
	logger *zap.Logger
}

func NewFeedPublishTask(feeds FeedPublisher, logger *zap.Logger) *FeedPublishTask {
	task := &FeedPublishTask{feeds: feeds, cron: cron.New(), logger: logger}
	task.startCronJob()
	return task
}

func (t *FeedPublishTask) startCronJob() {
	schedule := constant.FeedPublishCronSpec
	entryID, err := t.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		t.publish(ctx)
	})
	if err != nil {
		t.logger.Fatal("添加站点地图发布 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}
	t.cron.Start()
	t.logger.Info("站点地图发布定时任务已启动", zap.String("schedule", schedule), zap.Uint("cronEntryID", uint(entryID)))
}

func (t *FeedPublishTask) publish(ctx context.Context) {
	urls, err := t.feeds.Publish(ctx)
	if err != nil {
		t.logger.Error("发布站点地图/RSS 失败", zap.Error(err))
		return
	}
	if len(urls) > 0 {
		t.logger.Info("站点地图/RSS 已发布", zap.Strings("urls", urls))
	}
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭。
func (t *FeedPublishTask) Stop() context.Context {
	return t.cron.Stop()
}
