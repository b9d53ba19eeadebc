package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/dependencies"
	"github.com/Xushengqwer/trade_site/mq/producer"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	redisRepo "github.com/Xushengqwer/trade_site/repo/redis"
	"github.com/Xushengqwer/trade_site/service"
)

func main() {
	var (
		configFile  string
		opts        SeedOptions
		waitSeconds int
	)
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&opts.Categories, "categories", 5, "分类数量")
	flag.IntVar(&opts.Products, "products", 40, "产品数量")
	flag.IntVar(&opts.Posts, "posts", 15, "博客文章数量")
	flag.IntVar(&opts.Messages, "messages", 25, "询盘数量")
	flag.Int64Var(&opts.Seed, "seed", 0, "随机种子，0 表示每次不同")
	flag.IntVar(&waitSeconds, "wait", 3, "填充后等待的秒数（让异步 Kafka 事件发送完）")
	flag.Parse()

	if err := opts.validate(); err != nil {
		fmt.Println("错误:", err)
		os.Exit(1)
	}

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}

	var cfg appConfig.SiteConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	logger, err := core.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()
	zl := logger.Logger()

	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}
	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败 (Seeder)", zap.Error(err))
	}
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, zl)
	defer func() { _ = kafkaProducer.Close() }()

	productRepo := mysql.NewProductRepository(db, zl)
	categoryRepo := mysql.NewCategoryRepository(db, zl)
	postRepo := mysql.NewBlogPostRepository(db, zl)
	views := redisRepo.NewViewCounterRepository(rdb, zl, cfg.ViewSyncConfig)

	s := &Seeder{
		categories:    service.NewCategoryService(categoryRepo, zl),
		products:      service.NewProductService(productRepo, categoryRepo, views, redisRepo.NewPopularCache(rdb, zl), redisRepo.NewProductCache(rdb, zl), kafkaProducer, cfg.SiteInfo, zl),
		blog:          service.NewBlogService(postRepo, views, cfg.SiteInfo, zl),
		messages:      service.NewMessageService(mysql.NewMessageRepository(db, zl), kafkaProducer, cfg.SiteInfo, zl),
		opportunities: service.NewContentOpportunityService(mysql.NewContentOpportunityRepository(db, zl), productRepo, postRepo, zl),
		logger:        zl,
	}

	ctx := context.Background()
	start := time.Now()
	report, err := s.Run(ctx, opts)
	if err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	logger.Info("数据填充完成",
		zap.Int("categories", report.Categories),
		zap.Int("products", report.Products),
		zap.Int("posts", report.Posts),
		zap.Int("messages", report.Messages),
		zap.Int("opportunities", report.Opportunities),
		zap.Duration("耗时", time.Since(start)),
	)

	if waitSeconds > 0 {
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}
}
