package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/models/entities"
)

func newPost(title, slug string, status entities.PostStatus, tags ...string) *entities.BlogPost {
	now := time.Now()
	return &entities.BlogPost{
		Title:       title,
		Slug:        slug,
		Status:      status,
		Category:    "Guides",
		Tags:        datatypes.JSONSlice[string](tags),
		PublishedAt: &now,
	}
}

func TestBlogPostRelatedProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepository(db, nopLogger())
	ctx := context.Background()

	a := seedProduct(t, db, "A", "a", nil, entities.ProductStatusActive)
	b := seedProduct(t, db, "B", "b", nil, entities.ProductStatusActive)

	post := newPost("Export Guide", "export-guide", entities.PostStatusPublished, "export")
	if err := repo.Create(ctx, post, []uint64{a.ID, b.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "export-guide")
	if err != nil || got == nil {
		t.Fatalf("GetBySlug: %v, %v", got, err)
	}
	if len(got.RelatedProducts) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(got.RelatedProducts))
	}

	byProduct, err := repo.ListByProduct(ctx, a.ID)
	if err != nil || len(byProduct) != 1 {
		t.Fatalf("ListByProduct = %v, %v", byProduct, err)
	}
	links, err := repo.LinkedPostIDsByProduct(ctx)
	if err != nil {
		t.Fatalf("LinkedPostIDsByProduct: %v", err)
	}
	if len(links[a.ID]) != 1 || len(links[b.ID]) != 1 {
		t.Errorf("unexpected links %v", links)
	}

	// 只替换为 b
	if err := repo.Update(ctx, post.ID, map[string]interface{}{"title": "Export Guide 2025"}, []uint64{b.ID}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.GetByID(ctx, post.ID)
	if got.Title != "Export Guide 2025" || len(got.RelatedProducts) != 1 || got.RelatedProducts[0].ID != b.ID {
		t.Errorf("update not applied: %+v", got)
	}

	// nil 表示保持关联不变
	if err := repo.Update(ctx, post.ID, map[string]interface{}{"excerpt": "x"}, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.GetByID(ctx, post.ID)
	if len(got.RelatedProducts) != 1 {
		t.Errorf("nil related ids should keep associations, got %d", len(got.RelatedProducts))
	}

	if err := repo.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if p, err := repo.GetByID(ctx, post.ID); p != nil || err != nil {
		t.Errorf("deleted post lookup = %v, %v", p, err)
	}
	links, _ = repo.LinkedPostIDsByProduct(ctx)
	if len(links) != 0 {
		t.Errorf("links should be cleared after delete: %v", links)
	}
}

func TestBlogPostListFiltersAndCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepository(db, nopLogger())
	ctx := context.Background()

	p1 := newPost("Steel guide", "steel-guide", entities.PostStatusPublished, "steel", "export")
	p2 := newPost("Olive oil guide", "olive-guide", entities.PostStatusPublished, "food")
	p2.Category = "Food"
	p3 := newPost("Draft", "draft", entities.PostStatusDraft, "steel")
	for _, p := range []*entities.BlogPost{p1, p2, p3} {
		if err := repo.Create(ctx, p, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	published := entities.PostStatusPublished
	list, total, err := repo.List(ctx, BlogPostFilter{Status: &published, Tag: "steel", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || list[0].Slug != "steel-guide" {
		t.Errorf("tag filter returned %d", total)
	}

	_, total, _ = repo.List(ctx, BlogPostFilter{Search: "guide", Limit: 10})
	if total != 2 {
		t.Errorf("search filter returned %d, want 2", total)
	}

	cats, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Food" || cats[1] != "Guides" {
		t.Errorf("unexpected categories %v", cats)
	}
}

func TestBlogPostIncrementLikes(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepository(db, nopLogger())
	ctx := context.Background()

	post := newPost("Like me", "like-me", entities.PostStatusPublished)
	if err := repo.Create(ctx, post, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 1; i <= 3; i++ {
		likes, err := repo.IncrementLikes(ctx, post.ID)
		if err != nil {
			t.Fatalf("IncrementLikes: %v", err)
		}
		if likes != int64(i) {
			t.Errorf("likes = %d, want %d", likes, i)
		}
	}
	if _, err := repo.IncrementLikes(ctx, 999); err == nil {
		t.Errorf("expected error for missing post")
	}

	draft := newPost("Not yet", "not-yet", entities.PostStatusDraft)
	if err := repo.Create(ctx, draft, nil); err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if _, err := repo.IncrementLikes(ctx, draft.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("like on draft err = %v, want ErrRepoNotFound", err)
	}
	got, _ := repo.GetByID(ctx, draft.ID)
	if got == nil || got.LikeCount != 0 {
		t.Errorf("draft likes changed: %+v", got)
	}
}
