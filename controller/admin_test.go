package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
)

func TestSEOEndpoints(t *testing.T) {
	s := newTestServer(t, nil)
	p := s.seedProduct(t, "Ball Valve", "ball-valve", entities.ProductStatusActive, nil)

	var analysis vo.ProductSEOAnalysisVO
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/seo/products/%d", p.ID), nil), http.StatusOK, &analysis)
	if analysis.ProductID != p.ID || analysis.Score < 0 || analysis.Score > 100 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	decode(t, s.do(t, http.MethodGet, "/api/admin/seo/products/404", nil), http.StatusNotFound, nil)

	var overview vo.SEOOverviewVO
	decode(t, s.do(t, http.MethodGet, "/api/admin/seo/overview", nil), http.StatusOK, &overview)
	if len(overview.Products) != 1 {
		t.Fatalf("overview products = %d", len(overview.Products))
	}

	var task vo.SEOTaskVO
	decode(t, s.do(t, http.MethodPost, "/api/admin/seo/tasks", map[string]any{
		"product_id": p.ID,
		"title":      "Write meta description",
		"priority":   "high",
	}), http.StatusOK, &task)
	if task.ID == 0 || task.Status != entities.TaskStatusTodo {
		t.Fatalf("unexpected task: %+v", task)
	}
	decode(t, s.do(t, http.MethodPost, "/api/admin/seo/tasks", map[string]any{
		"product_id": 999,
		"title":      "Orphan",
	}), http.StatusNotFound, nil)

	var updated vo.SEOTaskVO
	decode(t, s.do(t, http.MethodPut, fmt.Sprintf("/api/admin/seo/tasks/%d", task.ID), map[string]any{
		"product_id": p.ID,
		"title":      "Write meta description",
		"status":     "done",
	}), http.StatusOK, &updated)
	if updated.Status != entities.TaskStatusDone {
		t.Fatalf("task status = %q", updated.Status)
	}

	var tasks []*vo.SEOTaskVO
	decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/seo/tasks?product_id=%d", p.ID), nil), http.StatusOK, &tasks)
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	decode(t, s.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/seo/tasks/%d", task.ID), nil), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/seo/tasks/%d", task.ID), nil), http.StatusNotFound, nil)
}

func TestContentOpportunityEndpoints(t *testing.T) {
	s := newTestServer(t, nil)
	for _, name := range []string{"Valve A", "Valve B"} {
		decode(t, s.do(t, http.MethodPost, "/api/admin/products", map[string]any{
			"name": name,
			"seo":  map[string]any{"relatedTopics": []string{"industrial valves"}},
		}), http.StatusOK, nil)
	}

	var regen vo.RegenerateResultVO
	decode(t, s.do(t, http.MethodPost, "/api/admin/content-opportunities/regenerate", nil), http.StatusOK, &regen)
	if regen.Created != 1 {
		t.Fatalf("unexpected regenerate result: %+v", regen)
	}

	var list []*vo.ContentOpportunityVO
	decode(t, s.do(t, http.MethodGet, "/api/admin/content-opportunities?status=open", nil), http.StatusOK, &list)
	if len(list) != 1 || list[0].ProductCount != 2 {
		t.Fatalf("unexpected opportunities: %+v", list)
	}
	decode(t, s.do(t, http.MethodGet, "/api/admin/content-opportunities?status=bogus", nil), http.StatusBadRequest, nil)

	id := list[0].ID
	base := fmt.Sprintf("/api/admin/content-opportunities/%d", id)

	var prompt vo.PromptVO
	decode(t, s.do(t, http.MethodGet, base+"/prompt", nil), http.StatusOK, &prompt)
	if !strings.Contains(prompt.Prompt, "industrial valves") {
		t.Fatalf("prompt does not mention topic: %q", prompt.Prompt)
	}

	decode(t, s.do(t, http.MethodPut, base+"/status", map[string]any{"status": "planned"}), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodPut, base+"/status", map[string]any{"status": "done"}), http.StatusBadRequest, nil)

	post := &entities.BlogPost{Title: "Valve guide", Slug: "valve-guide", Status: entities.PostStatusDraft}
	if err := s.posts.Create(context.Background(), post, nil); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	decode(t, s.do(t, http.MethodPost, base+"/posts", map[string]any{"blog_post_id": post.ID}), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodDelete, fmt.Sprintf("%s/posts/%d", base, post.ID), nil), http.StatusOK, nil)

	decode(t, s.do(t, http.MethodDelete, base, nil), http.StatusOK, nil)
	decode(t, s.do(t, http.MethodGet, base+"/prompt", nil), http.StatusNotFound, nil)
}

func TestDashboardEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedProduct(t, "A", "a", entities.ProductStatusActive, nil)
	s.seedProduct(t, "B", "b", entities.ProductStatusDraft, nil)
	decode(t, s.do(t, http.MethodPost, "/api/contact", contactBody("hello")), http.StatusOK, nil)

	var stats vo.DashboardVO
	decode(t, s.do(t, http.MethodGet, "/api/admin/dashboard", nil), http.StatusOK, &stats)
	if stats.ProductsByStatus["active"] != 1 || stats.ProductsByStatus["draft"] != 1 {
		t.Fatalf("unexpected product stats: %+v", stats.ProductsByStatus)
	}
	if stats.UnreadMessages != 1 {
		t.Fatalf("unread = %d, want 1", stats.UnreadMessages)
	}
}

func TestFeedEndpoints(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedProduct(t, "Visible", "visible", entities.ProductStatusActive, nil)
	s.seedProduct(t, "Hidden", "hidden", entities.ProductStatusDraft, nil)

	w := s.do(t, http.MethodGet, "/sitemap.xml", nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml") {
		t.Fatalf("sitemap: status %d, content type %q", w.Code, w.Header().Get("Content-Type"))
	}
	body := w.Body.String()
	if !strings.Contains(body, "https://example.com/products/visible") || strings.Contains(body, "/products/hidden") {
		t.Fatalf("unexpected sitemap:\n%s", body)
	}

	w = s.do(t, http.MethodGet, "/rss.xml", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<rss") {
		t.Fatalf("rss: status %d body %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/robots.txt", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Sitemap: https://example.com/sitemap.xml") {
		t.Fatalf("robots: status %d body %s", w.Code, w.Body.String())
	}

	// 未配置对象存储时不上传，空结果在响应中省略 data
	resp := decode(t, s.do(t, http.MethodPost, "/api/admin/feeds/publish", nil), http.StatusOK, nil)
	if len(resp.Data) != 0 {
		t.Fatalf("publish without storage should return no data, got %s", resp.Data)
	}
}
