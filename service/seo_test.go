package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/myErrors"
)

// seedAnalyzedProduct 创建一个除浏览量外各项信号都达标的产品：
// 焦点词密度 2%，有 meta 描述，图片都有 alt。
func seedAnalyzedProduct(t *testing.T, env *testEnv) *entities.Product {
	t.Helper()
	p := &entities.Product{
		Name:        "Ball Valve",
		Slug:        "ball-valve",
		Description: "<p>valve " + strings.Repeat("word ", 49) + "</p>",
		Images:      datatypes.JSONSlice[entities.ProductImage]{{URL: "/a.jpg", Alt: "ball valve"}},
		SEO:         datatypes.NewJSONType(entities.ProductSEO{MetaDescription: "Brass ball valves", FocusKeyword: "valve"}),
		Status:      entities.ProductStatusActive,
	}
	if err := env.products.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSEOAnalyzeProductCountsBacklinks(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seoService()
	ctx := context.Background()
	p := seedAnalyzedProduct(t, env)

	linked := &entities.BlogPost{Title: "Linked", Slug: "linked", Status: entities.PostStatusPublished, Content: "<p>nothing</p>"}
	if err := env.posts.Create(ctx, linked, []uint64{p.ID}); err != nil {
		t.Fatal(err)
	}
	// 正文提到产品名，且同时被关联，只算一次
	both := &entities.BlogPost{Title: "Both", Slug: "both", Status: entities.PostStatusPublished, Content: "<p>Our <b>Ball Valve</b> range</p>"}
	if err := env.posts.Create(ctx, both, []uint64{p.ID}); err != nil {
		t.Fatal(err)
	}
	env.seedPost(t, "Ball Valve guide", "mention", entities.PostStatusPublished)
	draft := &entities.BlogPost{Title: "Draft", Slug: "draft", Status: entities.PostStatusDraft, Content: "ball valve"}
	if err := env.posts.Create(ctx, draft, nil); err != nil {
		t.Fatal(err)
	}

	a, err := svc.AnalyzeProduct(ctx, p.ID)
	if err != nil || a == nil {
		t.Fatalf("AnalyzeProduct: %v, %v", a, err)
	}
	if a.Backlinks != 3 {
		t.Errorf("backlinks = %d, want 3", a.Backlinks)
	}
	if a.Keyword != "valve" || a.KeywordDensity != 2 {
		t.Errorf("keyword = %q density = %v", a.Keyword, a.KeywordDensity)
	}
	// meta 20 + 反链 30 + 密度 30 + alt 10
	if a.Score != 90 {
		t.Errorf("score = %d, want 90", a.Score)
	}
	if len(a.Recommendations) != 1 {
		t.Errorf("recommendations = %v, want only the traffic hint", a.Recommendations)
	}

	if missing, err := svc.AnalyzeProduct(ctx, 999); missing != nil || err != nil {
		t.Errorf("missing = %v, %v", missing, err)
	}
}

func TestSEOOverviewSortedAscending(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seoService()
	ctx := context.Background()

	good := seedAnalyzedProduct(t, env)
	bare := &entities.Product{Name: "Bare", Slug: "bare"}
	if err := env.products.Create(ctx, bare); err != nil {
		t.Fatal(err)
	}

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(overview.Products) != 2 || overview.Products[0].ProductID != bare.ID || overview.Products[1].ProductID != good.ID {
		t.Fatalf("order = %+v", overview.Products)
	}
	// good: meta 20 + 密度 30 + alt 10 = 60；bare: 0
	if overview.Products[1].Score != 60 || overview.Products[0].Score != 0 || overview.AverageScore != 30 {
		t.Errorf("scores = %d, %d avg %v", overview.Products[0].Score, overview.Products[1].Score, overview.AverageScore)
	}
}

func TestSEOTaskCRUD(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seoService()
	ctx := context.Background()
	p := seedAnalyzedProduct(t, env)

	task, err := svc.CreateTask(ctx, &dto.SEOTaskRequest{ProductID: p.ID, Title: "Add FAQ"})
	if err != nil {
		t.Fatal(err)
	}
	if task.Priority != entities.TaskPriorityMedium || task.Status != entities.TaskStatusTodo {
		t.Errorf("defaults = %+v", task)
	}

	if _, err := svc.CreateTask(ctx, &dto.SEOTaskRequest{ProductID: 999, Title: "x"}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("unknown product err = %v", err)
	}
	if _, err := svc.CreateTask(ctx, &dto.SEOTaskRequest{ProductID: p.ID, Title: "x", Priority: "urgent"}); !errors.Is(err, myErrors.ErrInvalidStatus) {
		t.Errorf("bad priority err = %v", err)
	}

	updated, err := svc.UpdateTask(ctx, task.ID, &dto.SEOTaskRequest{ProductID: p.ID, Title: "Add FAQ block", Status: entities.TaskStatusDone})
	if err != nil || updated.Status != entities.TaskStatusDone || updated.Title != "Add FAQ block" {
		t.Errorf("update = %+v, %v", updated, err)
	}

	done := entities.TaskStatusDone
	list, err := svc.ListTasks(ctx, &dto.SEOTaskQuery{Status: &done})
	if err != nil || len(list) != 1 {
		t.Errorf("ListTasks = %+v, %v", list, err)
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteTask(ctx, task.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}
