package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/dependencies"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	redisRepo "github.com/Xushengqwer/trade_site/repo/redis"
	"github.com/Xushengqwer/trade_site/service"
)

func newTestSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:seeder_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := dependencies.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := zap.NewNop()
	site := config.SiteInfo{BaseURL: "https://example.com", Name: "Example Export", Currency: "USD"}
	productRepo := mysql.NewProductRepository(db, l)
	categoryRepo := mysql.NewCategoryRepository(db, l)
	postRepo := mysql.NewBlogPostRepository(db, l)
	views := redisRepo.NewViewCounterRepository(rdb, l, config.ViewSyncConfig{})

	return &Seeder{
		categories:    service.NewCategoryService(categoryRepo, l),
		products:      service.NewProductService(productRepo, categoryRepo, views, redisRepo.NewPopularCache(rdb, l), redisRepo.NewProductCache(rdb, l), nil, site, l),
		blog:          service.NewBlogService(postRepo, views, site, l),
		messages:      service.NewMessageService(mysql.NewMessageRepository(db, l), nil, site, l),
		opportunities: service.NewContentOpportunityService(mysql.NewContentOpportunityRepository(db, l), productRepo, postRepo, l),
		logger:        l,
	}, db
}

func TestSeederRun(t *testing.T) {
	s, db := newTestSeeder(t)
	opts := SeedOptions{Categories: 3, Products: 8, Posts: 4, Messages: 5, Seed: 42}

	report, err := s.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Categories != 3 || report.Products != 8 || report.Posts != 4 || report.Messages != 5 {
		t.Fatalf("report = %+v", report)
	}

	var products int64
	db.Model(&entities.Product{}).Count(&products)
	if products != 8 {
		t.Fatalf("products in db = %d, want 8", products)
	}
	var messages int64
	db.Model(&entities.Message{}).Where("status = ?", entities.MessageStatusNew).Count(&messages)
	if messages != 5 {
		t.Fatalf("new messages = %d, want 5", messages)
	}
}

func TestSeederRerunSkipsExistingCategories(t *testing.T) {
	s, _ := newTestSeeder(t)
	opts := SeedOptions{Categories: 2, Seed: 1}
	if _, err := s.Run(context.Background(), opts); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	report, err := s.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if report.Categories != 0 {
		t.Fatalf("second run created %d categories, want 0", report.Categories)
	}
}

func TestSeedOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SeedOptions
		wantErr bool
	}{
		{"默认值", SeedOptions{Categories: 5, Products: 40}, false},
		{"负数", SeedOptions{Products: -1}, true},
		{"分类过多", SeedOptions{Categories: len(categoryPool) + 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.validate(); (err != nil) != tt.wantErr {
				t.Fatalf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
