package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
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
	"github.com/Xushengqwer/trade_site/service"
)

var testSite = config.SiteInfo{
	BaseURL:        "https://example.com",
	Name:           "Example Export",
	WhatsAppNumber: "+90 555 111 22 33",
	Currency:       "USD",
	Language:       "tr",
}

// apiResponse go-common 统一响应结构
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	engine     *gin.Engine
	products   mysql.ProductRepository
	categories mysql.CategoryRepository
	posts      mysql.BlogPostRepository
	messages   mysql.MessageRepository
}

// newTestServer 基于 SQLite 内存库与 miniredis 注册全部控制器。
func newTestServer(t *testing.T, contactLimit gin.HandlerFunc) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", name)
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
	products := mysql.NewProductRepository(db, l)
	categories := mysql.NewCategoryRepository(db, l)
	posts := mysql.NewBlogPostRepository(db, l)
	messages := mysql.NewMessageRepository(db, l)
	opportunities := mysql.NewContentOpportunityRepository(db, l)
	tasks := mysql.NewSEOTaskRepository(db, l)
	views := redisRepo.NewViewCounterRepository(client, l, config.ViewSyncConfig{})
	popular := redisRepo.NewPopularCache(client, l)
	cache := redisRepo.NewProductCache(client, l)

	productService := service.NewProductService(products, categories, views, popular, cache, nopPublisher{}, testSite, l)
	blogService := service.NewBlogService(posts, views, testSite, l)
	categoryService := service.NewCategoryService(categories, l)
	messageService := service.NewMessageService(messages, nopPublisher{}, testSite, l)
	seoService := service.NewSEOService(products, posts, tasks, l)
	opportunityService := service.NewContentOpportunityService(opportunities, products, posts, l)
	dashboardService := service.NewDashboardService(products, posts, messages, opportunities, tasks, l)
	feedService := service.NewFeedService(products, categories, posts, nil, testSite, l)

	r := gin.New()
	api := r.Group("/api")
	NewProductController(productService, blogService).RegisterRoutes(api)
	NewCategoryController(categoryService).RegisterRoutes(api)
	NewBlogController(blogService).RegisterRoutes(api)
	NewMessageController(messageService, contactLimit).RegisterRoutes(api)
	NewSEOController(seoService).RegisterRoutes(api)
	NewContentOpportunityController(opportunityService).RegisterRoutes(api)
	NewDashboardController(dashboardService).RegisterRoutes(api)
	NewFeedController(feedService, l).RegisterRoutes(r, api)

	return &testServer{
		engine:     r,
		products:   products,
		categories: categories,
		posts:      posts,
		messages:   messages,
	}
}

// do 发送请求，body 非 nil 时按 JSON 编码。
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "198.51.100.20:4000"
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// decode 校验状态码并把 data 解析到 out（out 可为 nil）。
func decode(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, out any) apiResponse {
	t.Helper()
	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d, body = %s", w.Code, wantStatus, w.Body.String())
	}
	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			t.Fatalf("decode data: %v (%s)", err, string(resp.Data))
		}
	}
	return resp
}

func (s *testServer) seedProduct(t *testing.T, name, slug string, status entities.ProductStatus, categoryID *uint64) *entities.Product {
	t.Helper()
	p := &entities.Product{Name: name, Slug: slug, Status: status, CategoryID: categoryID, Description: name + " description"}
	if err := s.products.Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

// nopPublisher 丢弃领域事件
type nopPublisher struct{}

func (nopPublisher) SendMessageReceivedEvent(context.Context, *entities.Message) error { return nil }

func (nopPublisher) SendProductChangedEvent(context.Context, events.ProductAction, *entities.Product) error {
	return nil
}
