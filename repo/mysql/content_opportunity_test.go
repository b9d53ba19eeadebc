package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/models/entities"
)

func TestContentOpportunityLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentOpportunityRepository(db, nopLogger())
	posts := NewBlogPostRepository(db, nopLogger())
	ctx := context.Background()

	small := &entities.ContentOpportunity{Topic: "olive oil", Keywords: datatypes.JSONSlice[string]{"olive oil"}, ProductCount: 1, Status: entities.OpportunityStatusOpen}
	big := &entities.ContentOpportunity{Topic: "steel pipe", Keywords: datatypes.JSONSlice[string]{"steel pipe", "steel piping"}, ProductCount: 3, Status: entities.OpportunityStatusOpen}
	for _, o := range []*entities.ContentOpportunity{small, big} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != big.ID {
		t.Fatalf("list not ordered by product count")
	}

	post := newPost("Steel pipe sizes", "steel-pipe-sizes", entities.PostStatusPublished)
	if err := posts.Create(ctx, post, nil); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := repo.LinkPosts(ctx, big.ID, []uint64{post.ID}); err != nil {
		t.Fatalf("LinkPosts: %v", err)
	}
	// 重复关联不应产生重复行
	if err := repo.LinkPosts(ctx, big.ID, []uint64{post.ID}); err != nil {
		t.Fatalf("LinkPosts again: %v", err)
	}
	got, _ := repo.GetByID(ctx, big.ID)
	if len(got.BlogPosts) != 1 {
		t.Errorf("linked posts = %d, want 1", len(got.BlogPosts))
	}
	if err := repo.LinkPosts(ctx, 999, []uint64{post.ID}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("link to missing opportunity: %v", err)
	}

	if err := repo.UnlinkPost(ctx, big.ID, post.ID); err != nil {
		t.Fatalf("UnlinkPost: %v", err)
	}
	got, _ = repo.GetByID(ctx, big.ID)
	if len(got.BlogPosts) != 0 {
		t.Errorf("post still linked after unlink")
	}

	if err := repo.Update(ctx, small.ID, map[string]interface{}{"status": entities.OpportunityStatusPlanned}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	open, _ := repo.CountByStatus(ctx, entities.OpportunityStatusOpen)
	if open != 1 {
		t.Errorf("open count = %d, want 1", open)
	}

	if err := repo.Delete(ctx, big.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// 物理删除后同名话题可以重新创建
	again := &entities.ContentOpportunity{Topic: "steel pipe", Status: entities.OpportunityStatusOpen}
	if err := repo.Create(ctx, again); err != nil {
		t.Errorf("recreate deleted topic: %v", err)
	}
}
