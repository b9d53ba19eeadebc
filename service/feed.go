package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/dependencies"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	"github.com/Xushengqwer/trade_site/seo"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// FeedService 生成 sitemap.xml、rss.xml 与 robots.txt，并可发布到对象存储。
type FeedService interface {
	Sitemap(ctx context.Context) ([]byte, error)
	RSS(ctx context.Context) ([]byte, error)
	Robots() string
	// Publish 上传 sitemap 与 RSS，返回对象的公开 URL；未配置对象存储时什么也不做。
	Publish(ctx context.Context) ([]string, error)
}

type feedService struct {
	productRepo  mysql.ProductRepository
	categoryRepo mysql.CategoryRepository
	postRepo     mysql.BlogPostRepository
	storage      dependencies.ObjectStorage // 可为 nil
	site         config.SiteInfo
	logger       *zap.Logger
}

func NewFeedService(
	productRepo mysql.ProductRepository,
	categoryRepo mysql.CategoryRepository,
	postRepo mysql.BlogPostRepository,
	storage dependencies.ObjectStorage,
	site config.SiteInfo,
	logger *zap.Logger,
) FeedService {
	return &feedService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		storage:      storage,
		site:         site,
		logger:       logger,
	}
}

// Sitemap 只包含公开可见的内容：上架产品、已发布文章与全部分类。
func (s *feedService) Sitemap(ctx context.Context) ([]byte, error) {
	base := s.site.BaseURL
	urls := []sitemapURL{
		{Loc: seo.BuildURL(base)},
		{Loc: seo.BuildURL(base, "products")},
		{Loc: seo.BuildURL(base, "blog")},
		{Loc: seo.BuildURL(base, "contact")},
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	for _, c := range categories {
		urls = append(urls, sitemapURL{
			Loc:     seo.BuildURL(base, "categories", c.Slug),
			LastMod: lastMod(c.UpdatedAt),
		})
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}
	for _, p := range products {
		if p.Status != entities.ProductStatusActive {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:     seo.BuildURL(base, "products", p.Slug),
			LastMod: lastMod(p.UpdatedAt),
		})
	}

	posts, err := s.postRepo.ListPublished(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("查询已发布文章失败: %w", err)
	}
	for _, post := range posts {
		urls = append(urls, sitemapURL{
			Loc:     seo.BuildURL(base, "blog", post.Slug),
			LastMod: lastMod(post.UpdatedAt),
		})
	}

	return encodeXML(sitemapURLSet{XMLNS: sitemapNamespace, URLs: urls})
}

func (s *feedService) RSS(ctx context.Context) ([]byte, error) {
	posts, err := s.postRepo.ListPublished(ctx, constant.FeedItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询已发布文章失败: %w", err)
	}

	items := make([]rssItem, 0, len(posts))
	for _, post := range posts {
		link := seo.BuildURL(s.site.BaseURL, "blog", post.Slug)
		item := rssItem{
			Title:       post.Title,
			Link:        link,
			Description: post.Excerpt,
			Category:    post.Category,
			GUID:        link,
		}
		if post.PublishedAt != nil {
			item.PubDate = post.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	return encodeXML(rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       s.site.Name,
			Link:        seo.BuildURL(s.site.BaseURL),
			Description: s.site.Description,
			Language:    s.site.Language,
			Items:       items,
		},
	})
}

func (s *feedService) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/admin/\n")
	b.WriteString("Disallow: /admin/\n")
	fmt.Fprintf(&b, "\nSitemap: %s\n", seo.BuildURL(s.site.BaseURL, "sitemap.xml"))
	return b.String()
}

func (s *feedService) Publish(ctx context.Context) ([]string, error) {
	if s.storage == nil {
		s.logger.Debug("未配置对象存储，跳过发布 sitemap/RSS")
		return nil, nil
	}

	sitemap, err := s.Sitemap(ctx)
	if err != nil {
		return nil, err
	}
	rss, err := s.RSS(ctx)
	if err != nil {
		return nil, err
	}

	objects := []struct {
		key         string
		body        []byte
		contentType string
	}{
		{constant.COSObjectKeySitemap, sitemap, "application/xml; charset=utf-8"},
		{constant.COSObjectKeyRSS, rss, "application/rss+xml; charset=utf-8"},
	}
	urls := make([]string, 0, len(objects))
	for _, o := range objects {
		u, err := s.storage.PutObject(ctx, o.key, o.body, o.contentType)
		if err != nil {
			return urls, fmt.Errorf("上传 %s 失败: %w", o.key, err)
		}
		urls = append(urls, u)
	}
	s.logger.Info("sitemap/RSS 已发布", zap.Strings("urls", urls))
	return urls, nil
}

func encodeXML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("XML 编码失败: %w", err)
	}
	return buf.Bytes(), nil
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
