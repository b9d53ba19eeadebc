package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/controller"
	"github.com/Xushengqwer/trade_site/dependencies"
	_ "github.com/Xushengqwer/trade_site/docs"
	"github.com/Xushengqwer/trade_site/middleware"
	"github.com/Xushengqwer/trade_site/mq/consumer"
	"github.com/Xushengqwer/trade_site/mq/producer"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	redisrepo "github.com/Xushengqwer/trade_site/repo/redis"
	"github.com/Xushengqwer/trade_site/router"
	"github.com/Xushengqwer/trade_site/service"
	"github.com/Xushengqwer/trade_site/tasks"
)

// @title           Trade Site API
// @version         1.0
// @description     外贸企业站后台服务：产品目录、博客、询盘、SEO 工具与内容规划。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.SiteConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	zl := logger.Logger()

	// 3. 分布式追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		// 对象存储上传走带追踪的 Transport
		http.DefaultTransport = otelhttp.NewTransport(http.DefaultTransport)
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 核心依赖
	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(err))
	}

	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}

	var storage dependencies.ObjectStorage
	if cfg.COSConfig.Enabled() {
		storage, err = dependencies.InitCOS(&cfg.COSConfig, zl)
		if err != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(err))
		}
		logger.Info("COS 客户端已初始化，站点地图将定时发布")
	} else {
		logger.Warn("未配置 COS，站点地图只通过 HTTP 提供")
	}

	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, zl)
	defer func() {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}()

	// 5. 数据仓库
	productRepo := mysql.NewProductRepository(db, zl)
	categoryRepo := mysql.NewCategoryRepository(db, zl)
	postRepo := mysql.NewBlogPostRepository(db, zl)
	messageRepo := mysql.NewMessageRepository(db, zl)
	opportunityRepo := mysql.NewContentOpportunityRepository(db, zl)
	taskRepo := mysql.NewSEOTaskRepository(db, zl)
	viewBatchRepo := mysql.NewViewCountBatchRepository(db, zl, cfg.ViewSyncConfig)

	viewRepo := redisrepo.NewViewCounterRepository(rdb, zl, cfg.ViewSyncConfig)
	popularCache := redisrepo.NewPopularCache(rdb, zl)
	productCache := redisrepo.NewProductCache(rdb, zl)

	// 6. 服务层
	productService := service.NewProductService(productRepo, categoryRepo, viewRepo, popularCache, productCache, kafkaProducer, cfg.SiteInfo, zl)
	categoryService := service.NewCategoryService(categoryRepo, zl)
	blogService := service.NewBlogService(postRepo, viewRepo, cfg.SiteInfo, zl)
	messageService := service.NewMessageService(messageRepo, kafkaProducer, cfg.SiteInfo, zl)
	seoService := service.NewSEOService(productRepo, postRepo, taskRepo, zl)
	opportunityService := service.NewContentOpportunityService(opportunityRepo, productRepo, postRepo, zl)
	dashboardService := service.NewDashboardService(productRepo, postRepo, messageRepo, opportunityRepo, taskRepo, zl)
	feedService := service.NewFeedService(productRepo, categoryRepo, postRepo, storage, cfg.SiteInfo, zl)

	// 7. 控制器
	contactLimiter := middleware.NewIPRateLimiter(cfg.ContactLimit)
	ctrls := router.Controllers{
		Product:            controller.NewProductController(productService, blogService),
		Category:           controller.NewCategoryController(categoryService),
		Blog:               controller.NewBlogController(blogService),
		Message:            controller.NewMessageController(messageService, middleware.ContactRateLimit(contactLimiter, zl)),
		SEO:                controller.NewSEOController(seoService),
		ContentOpportunity: controller.NewContentOpportunityController(opportunityService),
		Dashboard:          controller.NewDashboardController(dashboardService),
		Feed:               controller.NewFeedController(feedService, zl),
	}

	// 8. Kafka 消费者：通知渠道回传的"已回复"事件
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if topic := cfg.KafkaConfig.Topics.MessageReplied; len(cfg.KafkaConfig.Brokers) > 0 && topic != "" {
		if cfg.KafkaConfig.ConsumerGroupID == "" {
			cfg.KafkaConfig.ConsumerGroupID = constant.ServiceName + "_group"
		}
		handler := consumer.NewMessageRepliedHandler(zl, messageService)
		repliedConsumer, err := consumer.NewConsumer(&cfg.KafkaConfig, topic, handler, zl)
		if err != nil {
			logger.Fatal("初始化 MessageReplied 消费者失败", zap.Error(err))
		}
		consumers = append(consumers, repliedConsumer)
	} else {
		logger.Warn("Kafka 未配置或 messageReplied 主题为空，跳过消费者初始化")
	}
	for _, c := range consumers {
		consumerWg.Add(1)
		go func(cons *consumer.Consumer) {
			defer consumerWg.Done()
			cons.Start(consumerCtx)
		}(c)
	}

	// 9. 定时任务
	stoppers := []func() context.Context{
		tasks.NewViewCountSyncTask(viewRepo, viewBatchRepo, productService, zl).Stop,
		tasks.NewPopularProductsTask(popularCache, productRepo, zl).Stop,
	}
	if storage != nil {
		stoppers = append(stoppers, tasks.NewFeedPublishTask(feedService, zl).Stop)
	}
	logger.Info("后台定时任务已启动", zap.Int("count", len(stoppers)))

	// 10. HTTP 服务器
	ginRouter := router.SetupRouter(logger, &cfg, ctrls)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{Addr: serverAddr, Handler: ginRouter}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 11. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	for _, stop := range stoppers {
		select {
		case <-stop().Done():
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}
	logger.Info("服务已成功关闭")
}
