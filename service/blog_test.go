package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/myErrors"
)

func TestRelatedByTags(t *testing.T) {
	post := &entities.BlogPost{Tags: []string{"Steel", "pipes", "export"}}
	post.ID = 1
	mk := func(id uint64, tags ...string) *entities.BlogPost {
		p := &entities.BlogPost{Tags: tags}
		p.ID = id
		return p
	}
	candidates := []*entities.BlogPost{
		mk(1, "steel", "pipes"),           // 自身
		mk(2, "steel"),                    // 1 个
		mk(3, "cooking"),                  // 0 个
		mk(4, "STEEL", "Pipes", "export"), // 3 个
		mk(5, "pipes", "pipes"),           // 重复标签只算一次
	}

	got := RelatedByTags(post, candidates, 3)
	var ids []uint64
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	want := []uint64{4, 2, 5}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}

	if got := RelatedByTags(&entities.BlogPost{}, candidates, 3); len(got) != 0 {
		t.Errorf("untagged post related = %d", len(got))
	}
}

func TestBlogCreateFromBlocks(t *testing.T) {
	env := newTestEnv(t)
	svc := env.blogService()
	ctx := context.Background()

	product := &entities.Product{Name: "Valve", Slug: "valve", Status: entities.ProductStatusActive}
	if err := env.products.Create(ctx, product); err != nil {
		t.Fatal(err)
	}

	blocks := json.RawMessage(`[{"type":"heading","content":"Why <steel>?","level":3},{"type":"paragraph","content":"Because."}]`)
	created, err := svc.Create(ctx, &dto.BlogPostRequest{
		Title:             "Choosing Pipes",
		Blocks:            blocks,
		Tags:              []string{" steel ", "Steel", "pipes"},
		Status:            entities.PostStatusPublished,
		RelatedProductIDs: []uint64{product.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Content != "<h3>Why &lt;steel&gt;?</h3>\n<p>Because.</p>" {
		t.Errorf("content = %q", created.Content)
	}
	if len(created.Tags) != 2 {
		t.Errorf("tags = %v, want deduplicated", created.Tags)
	}
	if created.PublishedAt == nil {
		t.Error("published post without published_at")
	}
	if len(created.RelatedProducts) != 1 || created.RelatedProducts[0].ID != product.ID {
		t.Errorf("related products = %+v", created.RelatedProducts)
	}

	backlinks, err := svc.PostsForProduct(ctx, product.ID)
	if err != nil || len(backlinks) != 1 {
		t.Errorf("PostsForProduct = %+v, %v", backlinks, err)
	}

	_, err = svc.Create(ctx, &dto.BlogPostRequest{Title: "Broken", Blocks: json.RawMessage(`{"type":`)})
	if !errors.Is(err, myErrors.ErrInvalidContent) {
		t.Errorf("malformed blocks err = %v", err)
	}
}

func TestBlogGetBySlugPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.blogService()
	ctx := context.Background()

	draft := env.seedPost(t, "Draft", "draft", entities.PostStatusDraft, "steel")
	if got, err := svc.GetBySlug(ctx, draft.Slug, "v"); got != nil || err != nil {
		t.Errorf("draft visible: %v, %v", got, err)
	}
	if got, err := svc.GetBySlug(ctx, "nope", "v"); got != nil || err != nil {
		t.Errorf("missing = %v, %v", got, err)
	}

	featured := env.seedPost(t, "Main", "main", entities.PostStatusPublished, "steel", "pipes")
	env.seedPost(t, "Sibling", "sibling", entities.PostStatusPublished, "pipes")
	env.seedPost(t, "Unrelated", "unrelated", entities.PostStatusPublished, "food")

	got, err := svc.GetBySlug(ctx, featured.Slug, "1.2.3.4")
	if err != nil || got == nil {
		t.Fatalf("GetBySlug: %v, %v", got, err)
	}
	if !strings.Contains(got.Post.StructuredData, "BlogPosting") {
		t.Errorf("structured data = %s", got.Post.StructuredData)
	}
	if got.Post.ViewCount != 1 {
		t.Errorf("view count = %d", got.Post.ViewCount)
	}
	if len(got.RelatedPosts) != 1 || got.RelatedPosts[0].Slug != "sibling" {
		t.Errorf("related = %+v", got.RelatedPosts)
	}
}

func TestBlogUpdateKeepsSlugAndLikes(t *testing.T) {
	env := newTestEnv(t)
	svc := env.blogService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.BlogPostRequest{Title: "First Title", Content: "<p>x</p>"})
	if err != nil {
		t.Fatal(err)
	}
	updated, err := svc.Update(ctx, created.ID, &dto.BlogPostRequest{Title: "New Title", Content: "<p>y</p>", Status: entities.PostStatusPublished})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Slug != created.Slug || updated.Title != "New Title" || updated.PublishedAt == nil {
		t.Errorf("updated = %+v", updated)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Like(ctx, created.ID); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := svc.GetByID(ctx, created.ID)
	if got.LikeCount != 2 {
		t.Errorf("likes = %d", got.LikeCount)
	}

	preview, err := svc.PreviewBlocks([]byte(`[{"type":"mystery","content":"a & b"}]`))
	if err != nil || preview.HTML != "<p>a &amp; b</p>" {
		t.Errorf("preview = %+v, %v", preview, err)
	}
}
