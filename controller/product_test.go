package controller

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
)

func TestProductAdminLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	var created vo.ProductVO
	decode(t, s.do(t, http.MethodPost, "/api/admin/products", map[string]any{
		"name":  "Çelik Boru",
		"price": "12.5",
	}), http.StatusOK, &created)
	if created.ID == 0 || created.Slug != "celik-boru" || created.Status != entities.ProductStatusDraft {
		t.Fatalf("unexpected created product: %+v", created)
	}

	var fetched vo.ProductVO
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", created.ID), nil), http.StatusOK, &fetched)
	if fetched.Name != "Çelik Boru" {
		t.Fatalf("fetched name = %q", fetched.Name)
	}

	// 草稿不在前台展示
	decode(t, s.do(t, http.MethodGet, "/api/products/slug/celik-boru", nil), http.StatusNotFound, nil)

	var bulk vo.BulkResult
	decode(t, s.do(t, http.MethodPost, "/api/admin/products/bulk/status", map[string]any{
		"ids":    []uint64{created.ID, 9999},
		"status": "active",
	}), http.StatusOK, &bulk)
	if len(bulk.Succeeded) != 1 || len(bulk.Failed) != 1 || bulk.Failed[0].ID != 9999 {
		t.Fatalf("unexpected bulk result: %+v", bulk)
	}

	var public vo.ProductVO
	decode(t, s.do(t, http.MethodGet, "/api/products/slug/celik-boru", nil), http.StatusOK, &public)
	if public.ID != created.ID {
		t.Fatalf("public product id = %d", public.ID)
	}

	var page vo.PageVO[*vo.ProductSummaryVO]
	decode(t, s.do(t, http.MethodGet, "/api/products?page=1&page_size=10", nil), http.StatusOK, &page)
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected public page: %+v", page)
	}

	var updated vo.ProductVO
	decode(t, s.do(t, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", created.ID), map[string]any{
		"manufacturer": "Acme",
	}), http.StatusOK, &updated)
	if updated.Manufacturer != "Acme" || updated.Name != "Çelik Boru" {
		t.Fatalf("partial update lost fields: %+v", updated)
	}

	decode(t, s.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", created.ID), nil), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", created.ID), nil), http.StatusNotFound, nil)
	decode(t, s.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", created.ID), nil), http.StatusNotFound, nil)
}

func TestProductErrorMapping(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedProduct(t, "Vana", "vana", entities.ProductStatusActive, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"non-numeric id", http.MethodGet, "/api/admin/products/abc", nil, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/api/admin/products", map[string]any{"price": "1"}, http.StatusBadRequest},
		{"explicit slug taken", http.MethodPost, "/api/admin/products", map[string]any{"name": "Other", "slug": "vana"}, http.StatusConflict},
		{"unusable slug", http.MethodPost, "/api/admin/products", map[string]any{"name": "Other", "slug": "???"}, http.StatusBadRequest},
		{"unknown category", http.MethodPost, "/api/admin/products", map[string]any{"name": "Other", "category_id": 42}, http.StatusNotFound},
		{"bad status", http.MethodPost, "/api/admin/products/bulk/status", map[string]any{"ids": []uint64{1}, "status": "gone"}, http.StatusBadRequest},
		{"bad sort", http.MethodGet, "/api/products?sort=price", nil, http.StatusBadRequest},
		{"related of missing product", http.MethodGet, "/api/products/777/related", nil, http.StatusNotFound},
		{"prompt of missing product", http.MethodGet, "/api/admin/products/777/prompt", nil, http.StatusNotFound},
		{"bad prompt kind", http.MethodGet, "/api/admin/products/1/prompt?kind=poem", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestProductImport(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/admin/products/import", `[{"name":"A"},{"name":""}]`)
	resp := decode(t, w, http.StatusBadRequest, nil)
	if resp.Message == "" {
		t.Fatalf("expected import error message")
	}

	var result vo.ImportResultVO
	decode(t, s.do(t, http.MethodPost, "/api/admin/products/import", `[{"name":"A"},{"name":"A"}]`), http.StatusOK, &result)
	if result.Imported != 2 {
		t.Fatalf("imported = %d, want 2", result.Imported)
	}
}

func TestProductPublicListings(t *testing.T) {
	s := newTestServer(t, nil)
	cat := &entities.Category{Name: "Pipes", Slug: "pipes"}
	if err := s.categories.Create(context.Background(), cat); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	a := s.seedProduct(t, "Pipe A", "pipe-a", entities.ProductStatusActive, &cat.ID)
	s.seedProduct(t, "Pipe B", "pipe-b", entities.ProductStatusActive, &cat.ID)
	s.seedProduct(t, "Pipe C", "pipe-c", entities.ProductStatusDraft, &cat.ID)

	var related []*vo.ProductSummaryVO
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d/related", a.ID), nil), http.StatusOK, &related)
	if len(related) != 1 || related[0].Slug != "pipe-b" {
		t.Fatalf("unexpected related products: %+v", related)
	}

	var popular []*vo.ProductSummaryVO
	decode(t, s.do(t, http.MethodGet, "/api/products/popular?limit=5", nil), http.StatusOK, &popular)
	for _, p := range popular {
		if p.Slug == "pipe-c" {
			t.Fatalf("draft product listed as popular")
		}
	}

	var prompt vo.PromptVO
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d/prompt?kind=seo", a.ID), nil), http.StatusOK, &prompt)
	if prompt.Prompt == "" {
		t.Fatalf("expected prompt text")
	}
}
