package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/models/entities"
)

func TestBatchIncrementViewCounts(t *testing.T) {
	db := newTestDB(t)
	// 批大小 2 强制拆成多个批次
	repo := NewViewCountBatchRepository(db, nopLogger(), config.ViewSyncConfig{BatchSize: 2, ConcurrencyLevel: 2})
	ctx := context.Background()

	var ids []uint64
	for _, slug := range []string{"a", "b", "c"} {
		ids = append(ids, seedProduct(t, db, slug, slug, nil, entities.ProductStatusActive).ID)
	}

	deltas := map[uint64]int64{ids[0]: 5, ids[1]: 1, ids[2]: 12}
	failed, err := repo.BatchIncrementViewCounts(ctx, constant.ViewKindProduct, deltas)
	if err != nil || len(failed) != 0 {
		t.Fatalf("BatchIncrementViewCounts: failed=%v err=%v", failed, err)
	}
	// 第二轮累加
	if _, err := repo.BatchIncrementViewCounts(ctx, constant.ViewKindProduct, map[uint64]int64{ids[0]: 2}); err != nil {
		t.Fatalf("second round: %v", err)
	}

	want := map[uint64]int64{ids[0]: 7, ids[1]: 1, ids[2]: 12}
	for id, v := range want {
		var p entities.Product
		if err := db.First(&p, id).Error; err != nil {
			t.Fatalf("load %d: %v", id, err)
		}
		if p.ViewCount != v {
			t.Errorf("product %d view_count = %d, want %d", id, p.ViewCount, v)
		}
	}
}

func TestBatchIncrementViewCountsBlog(t *testing.T) {
	db := newTestDB(t)
	repo := NewViewCountBatchRepository(db, nopLogger(), config.ViewSyncConfig{})
	posts := NewBlogPostRepository(db, nopLogger())
	ctx := context.Background()

	post := newPost("Guide", "guide", entities.PostStatusPublished)
	if err := posts.Create(ctx, post, nil); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := repo.BatchIncrementViewCounts(ctx, constant.ViewKindBlog, map[uint64]int64{post.ID: 4}); err != nil {
		t.Fatalf("increment: %v", err)
	}
	got, _ := posts.GetByID(ctx, post.ID)
	if got.ViewCount != 4 {
		t.Errorf("view_count = %d, want 4", got.ViewCount)
	}
}

func TestBatchIncrementViewCountsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewViewCountBatchRepository(db, nopLogger(), config.ViewSyncConfig{})
	deltas := map[uint64]int64{1: 3}
	failed, err := repo.BatchIncrementViewCounts(context.Background(), constant.ViewKind("page"), deltas)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if failed[1] != 3 {
		t.Errorf("unknown kind should hand back all deltas, got %v", failed)
	}
}

func TestBatchIncrementViewCountsCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewViewCountBatchRepository(db, nopLogger(), config.ViewSyncConfig{BatchSize: 1, ConcurrencyLevel: 1})
	p := seedProduct(t, db, "a", "a", nil, entities.ProductStatusActive)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failed, err := repo.BatchIncrementViewCounts(ctx, constant.ViewKindProduct, map[uint64]int64{p.ID: 9})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if failed[p.ID] != 9 {
		t.Errorf("cancelled batch should be returned, got %v", failed)
	}
}
