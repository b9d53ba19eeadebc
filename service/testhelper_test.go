package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/dependencies"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	redisRepo "github.com/Xushengqwer/trade_site/repo/redis"
)

var testSite = config.SiteInfo{
	BaseURL:        "https://example.com",
	Name:           "Example Export",
	Description:    "Industrial supplies",
	WhatsAppNumber: "+90 555 111 22 33",
	Currency:       "USD",
	Language:       "tr",
}

// testEnv 一套基于 SQLite 内存库与 miniredis 的完整依赖
type testEnv struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	redis *redis.Client

	products      mysql.ProductRepository
	categories    mysql.CategoryRepository
	posts         mysql.BlogPostRepository
	messages      mysql.MessageRepository
	opportunities mysql.ContentOpportunityRepository
	tasks         mysql.SEOTaskRepository

	views   redisRepo.ViewCounterRepository
	popular redisRepo.PopularCache
	cache   redisRepo.ProductCache

	events *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
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
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := zap.NewNop()
	return &testEnv{
		db:            db,
		mr:            mr,
		redis:         client,
		products:      mysql.NewProductRepository(db, l),
		categories:    mysql.NewCategoryRepository(db, l),
		posts:         mysql.NewBlogPostRepository(db, l),
		messages:      mysql.NewMessageRepository(db, l),
		opportunities: mysql.NewContentOpportunityRepository(db, l),
		tasks:         mysql.NewSEOTaskRepository(db, l),
		views:         redisRepo.NewViewCounterRepository(client, l, config.ViewSyncConfig{}),
		popular:       redisRepo.NewPopularCache(client, l),
		cache:         redisRepo.NewProductCache(client, l),
		events:        newFakePublisher(),
	}
}

func (e *testEnv) productService() ProductService {
	return NewProductService(e.products, e.categories, e.views, e.popular, e.cache, e.events, testSite, zap.NewNop())
}

func (e *testEnv) blogService() BlogService {
	return NewBlogService(e.posts, e.views, testSite, zap.NewNop())
}

func (e *testEnv) messageService() MessageService {
	return NewMessageService(e.messages, e.events, testSite, zap.NewNop())
}

func (e *testEnv) seoService() SEOService {
	return NewSEOService(e.products, e.posts, e.tasks, zap.NewNop())
}

func (e *testEnv) opportunityService() ContentOpportunityService {
	return NewContentOpportunityService(e.opportunities, e.products, e.posts, zap.NewNop())
}

func (e *testEnv) seedCategory(t *testing.T, name string) *entities.Category {
	t.Helper()
	c := &entities.Category{Name: name, Slug: strings.ToLower(name)}
	if err := e.categories.Create(context.Background(), c); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func (e *testEnv) seedPost(t *testing.T, title, slug string, status entities.PostStatus, tags ...string) *entities.BlogPost {
	t.Helper()
	now := time.Now()
	post := &entities.BlogPost{Title: title, Slug: slug, Status: status, Tags: tags, Content: "<p>" + title + "</p>"}
	if status == entities.PostStatusPublished {
		post.PublishedAt = &now
	}
	if err := e.posts.Create(context.Background(), post, nil); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

// fakePublisher 记录收到的事件，供断言异步发送。
type fakePublisher struct {
	mu       sync.Mutex
	received []uint64
	changed  []events.ProductAction
	notify   chan struct{}
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{notify: make(chan struct{}, 64)}
}

func (f *fakePublisher) SendMessageReceivedEvent(_ context.Context, msg *entities.Message) error {
	f.mu.Lock()
	f.received = append(f.received, msg.ID)
	f.mu.Unlock()
	f.notify <- struct{}{}
	return nil
}

func (f *fakePublisher) SendProductChangedEvent(_ context.Context, action events.ProductAction, _ *entities.Product) error {
	f.mu.Lock()
	f.changed = append(f.changed, action)
	f.mu.Unlock()
	f.notify <- struct{}{}
	return nil
}

// wait 等待 n 个事件到达，超时则失败。
func (f *fakePublisher) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.notify:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
}

// fakeStorage 内存对象存储
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failKey string
}

func (f *fakeStorage) PutObject(_ context.Context, key string, body []byte, _ string) (string, error) {
	if key == f.failKey {
		return "", fmt.Errorf("upload refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[key] = body
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func ptr[T any](v T) *T { return &v }

func zapNop() *zap.Logger { return zap.NewNop() }
