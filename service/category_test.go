package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/myErrors"
)

func TestCategoryCreateAppendsAndCounts(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(env.categories, zapNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CategoryRequest{Name: "Gıda Ürünleri"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(ctx, &dto.CategoryRequest{Name: "Metal"})
	if err != nil {
		t.Fatal(err)
	}
	if first.Slug != "gida-urunleri" || first.DisplayOrder != 0 || second.DisplayOrder != 1 {
		t.Errorf("created = %+v, %+v", first, second)
	}

	p := &entities.Product{Name: "Pipe", Slug: "pipe", CategoryID: &second.ID}
	if err := env.products.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetBySlug(ctx, "metal")
	if err != nil || got == nil || got.ProductCount != 1 {
		t.Errorf("GetBySlug = %+v, %v", got, err)
	}
	if missing, err := svc.GetBySlug(ctx, "nope"); missing != nil || err != nil {
		t.Errorf("missing = %v, %v", missing, err)
	}

	// 改名不改 slug
	renamed, err := svc.Update(ctx, second.ID, &dto.CategoryRequest{Name: "Metals"})
	if err != nil || renamed.Slug != "metal" || renamed.Name != "Metals" {
		t.Errorf("Update = %+v, %v", renamed, err)
	}
	if _, err := svc.Create(ctx, &dto.CategoryRequest{Name: "Other", Slug: "metal"}); !errors.Is(err, myErrors.ErrSlugTaken) {
		t.Errorf("duplicate slug err = %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CategoryRequest{Name: "Other", Slug: "???"}); !errors.Is(err, myErrors.ErrInvalidSlug) {
		t.Errorf("unusable slug err = %v, want ErrInvalidSlug", err)
	}

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatal(err)
	}
	orphan, _ := env.products.GetByID(ctx, p.ID)
	if orphan == nil || orphan.CategoryID != nil {
		t.Errorf("product after category delete = %+v", orphan)
	}
	if _, err := svc.Update(ctx, second.ID, &dto.CategoryRequest{Name: "x"}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("update deleted err = %v", err)
	}
}

func TestCategoryReorderPartialFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(env.categories, zapNop())
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CategoryRequest{Name: "A"})
	b, _ := svc.Create(ctx, &dto.CategoryRequest{Name: "B"})
	c, _ := svc.Create(ctx, &dto.CategoryRequest{Name: "C"})

	res, err := svc.Reorder(ctx, []uint64{c.ID, 777, a.ID, b.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Failed) != 1 || res.Failed[0].ID != 777 || len(res.Succeeded) != 3 {
		t.Errorf("result = %+v", res)
	}

	list, _ := svc.List(ctx)
	var slugs []string
	for _, cat := range list {
		slugs = append(slugs, cat.Slug)
	}
	if len(slugs) != 3 || slugs[0] != "c" || slugs[1] != "a" || slugs[2] != "b" {
		t.Errorf("order = %v", slugs)
	}

	if _, err := svc.Reorder(ctx, nil); !errors.Is(err, myErrors.ErrEmptySelection) {
		t.Errorf("empty err = %v", err)
	}
}
