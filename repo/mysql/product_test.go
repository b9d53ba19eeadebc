package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/models/entities"
)

func TestProductCreateAndReadBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	cat := seedCategory(t, db, "Pipes", "pipes", 0)
	in := &entities.Product{
		Name:           "Seamless Steel Pipe",
		Slug:           "seamless-steel-pipe",
		CategoryID:     &cat.ID,
		Manufacturer:   "Acme",
		Price:          "$1,250 / ton",
		Description:    "<p>Pipe</p>",
		TechnicalSpecs: datatypes.JSONSlice[entities.TechnicalSpec]{{Name: "Diameter", Value: "50mm"}},
		AdditionalInfo: datatypes.JSONSlice[entities.AdditionalInfo]{{Title: "MOQ", Content: "1 ton"}},
		Images:         datatypes.JSONSlice[entities.ProductImage]{{URL: "/a.jpg", Alt: "pipe"}},
		Videos:         datatypes.JSONSlice[string]{"https://youtu.be/x"},
		SEO:            datatypes.NewJSONType(entities.ProductSEO{MetaDescription: "desc", Keywords: []string{"pipe"}, RelatedTopics: []string{"steel pipe"}}),
		Status:         entities.ProductStatusActive,
		Featured:       true,
	}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v, %v", got, err)
	}
	if got.Name != in.Name || got.Slug != in.Slug || *got.CategoryID != cat.ID || got.Price != in.Price ||
		got.Manufacturer != in.Manufacturer || got.Description != in.Description || !got.Featured ||
		got.Status != entities.ProductStatusActive {
		t.Errorf("scalar fields differ: %+v", got)
	}
	if len(got.TechnicalSpecs) != 1 || got.TechnicalSpecs[0].Value != "50mm" {
		t.Errorf("technical specs differ: %+v", got.TechnicalSpecs)
	}
	if len(got.AdditionalInfo) != 1 || got.AdditionalInfo[0].Content != "1 ton" {
		t.Errorf("additional info differs: %+v", got.AdditionalInfo)
	}
	if len(got.Images) != 1 || got.Images[0].Alt != "pipe" || len(got.Videos) != 1 {
		t.Errorf("media differs: %+v %+v", got.Images, got.Videos)
	}
	seo := got.SEO.Data()
	if seo.MetaDescription != "desc" || len(seo.RelatedTopics) != 1 || seo.RelatedTopics[0] != "steel pipe" {
		t.Errorf("seo differs: %+v", seo)
	}

	bySlug, err := repo.GetBySlug(ctx, "seamless-steel-pipe")
	if err != nil || bySlug == nil || bySlug.ID != in.ID {
		t.Fatalf("GetBySlug: %v, %v", bySlug, err)
	}
}

func TestProductMissingLookupsReturnNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	if p, err := repo.GetByID(ctx, 999); p != nil || err != nil {
		t.Errorf("GetByID missing = %v, %v; want nil, nil", p, err)
	}
	if p, err := repo.GetBySlug(ctx, "nope"); p != nil || err != nil {
		t.Errorf("GetBySlug missing = %v, %v; want nil, nil", p, err)
	}
}

func TestProductListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	pipes := seedCategory(t, db, "Pipes", "pipes", 0)
	seedProduct(t, db, "Steel Pipe", "steel-pipe", &pipes.ID, entities.ProductStatusActive)
	seedProduct(t, db, "Copper Pipe", "copper-pipe", &pipes.ID, entities.ProductStatusDraft)
	seedProduct(t, db, "Marble Tile", "marble-tile", nil, entities.ProductStatusActive)

	active := entities.ProductStatusActive
	list, total, err := repo.List(ctx, ProductFilter{Status: &active, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("active filter: total=%d len=%d", total, len(list))
	}

	list, total, err = repo.List(ctx, ProductFilter{CategoryID: &pipes.ID, Search: "copper", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || list[0].Slug != "copper-pipe" {
		t.Errorf("category+search filter returned %d items", total)
	}

	list, total, err = repo.List(ctx, ProductFilter{Sort: "name", Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(list) != 2 || list[0].Name != "Marble Tile" || list[1].Name != "Steel Pipe" {
		t.Errorf("name sort page 2 unexpected: total=%d %v", total, list)
	}
}

func TestProductUpdateAndDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	if err := repo.Update(ctx, 42, map[string]interface{}{"name": "x"}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("Update missing: want ErrRepoNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("Delete missing: want ErrRepoNotFound, got %v", err)
	}

	p := seedProduct(t, db, "Steel Pipe", "steel-pipe", nil, entities.ProductStatusDraft)
	if err := repo.UpdateStatus(ctx, p.ID, entities.ProductStatusArchived); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ := repo.GetByID(ctx, p.ID)
	if got.Status != entities.ProductStatusArchived {
		t.Errorf("status not updated: %s", got.Status)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := repo.GetByID(ctx, p.ID); got != nil {
		t.Errorf("deleted product still visible")
	}
	// 软删除后 slug 仍被占用
	if exists, _ := repo.SlugExists(ctx, "steel-pipe", 0); !exists {
		t.Errorf("slug of soft-deleted product should still be reserved")
	}
}

func TestProductCreateBatchRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	seedProduct(t, db, "Existing", "dup", nil, entities.ProductStatusActive)
	err := repo.CreateBatch(ctx, []*entities.Product{
		{Name: "New", Slug: "new-one", Status: entities.ProductStatusDraft},
		{Name: "Dup", Slug: "dup", Status: entities.ProductStatusDraft},
	})
	if err == nil {
		t.Fatal("expected unique violation")
	}
	if exists, _ := repo.SlugExists(ctx, "new-one", 0); exists {
		t.Errorf("first product should have been rolled back")
	}
}

func TestProductRelatedFeaturedAndCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db, nopLogger())
	ctx := context.Background()

	cat := seedCategory(t, db, "Pipes", "pipes", 0)
	a := seedProduct(t, db, "A", "a", &cat.ID, entities.ProductStatusActive)
	seedProduct(t, db, "B", "b", &cat.ID, entities.ProductStatusActive)
	seedProduct(t, db, "C", "c", &cat.ID, entities.ProductStatusDraft)
	if err := db.Model(a).Update("featured", true).Error; err != nil {
		t.Fatal(err)
	}

	related, err := repo.ListRelated(ctx, cat.ID, a.ID, 4)
	if err != nil {
		t.Fatalf("ListRelated: %v", err)
	}
	if len(related) != 1 || related[0].Slug != "b" {
		t.Errorf("related should only contain active sibling b, got %v", related)
	}

	featured, err := repo.ListFeatured(ctx, 10)
	if err != nil || len(featured) != 1 || featured[0].ID != a.ID {
		t.Errorf("ListFeatured = %v, %v", featured, err)
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[entities.ProductStatusActive] != 2 || counts[entities.ProductStatusDraft] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}
