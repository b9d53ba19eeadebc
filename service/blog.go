package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	"github.com/Xushengqwer/trade_site/seo"
)

// relatedCandidateLimit 计算相关文章时参与比较的最近文章数
const relatedCandidateLimit = 100

// BlogService 博客内容管理。
type BlogService interface {
	// List publicOnly 为 true 时只返回已发布文章。
	List(ctx context.Context, q *dto.BlogListQuery, publicOnly bool) (*vo.PageVO[*vo.BlogPostSummaryVO], error)
	// GetByID 后台查询，未找到返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*vo.BlogPostVO, error)
	// GetBySlug 前台文章页：只返回已发布文章，附带相关文章与结构化数据，并记录一次浏览。
	GetBySlug(ctx context.Context, slug, visitor string) (*vo.BlogPostDetailVO, error)
	// Create / Update 提供 blocks 时由内容块生成正文 HTML。
	Create(ctx context.Context, req *dto.BlogPostRequest) (*vo.BlogPostVO, error)
	Update(ctx context.Context, id uint64, req *dto.BlogPostRequest) (*vo.BlogPostVO, error)
	Delete(ctx context.Context, id uint64) error
	// Like 已发布文章点赞数加一，返回最新点赞数；未发布按不存在处理。
	Like(ctx context.Context, id uint64) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	// PostsForProduct 推荐了该产品的已发布文章（产品页的反向链接）。
	PostsForProduct(ctx context.Context, productID uint64) ([]*vo.BlogPostSummaryVO, error)
	// PreviewBlocks 只做内容块到 HTML 的转换，不落库。
	PreviewBlocks(raw []byte) (*vo.HTMLVO, error)
}

type blogService struct {
	postRepo mysql.BlogPostRepository
	views    ViewRecorder
	site     config.SiteInfo
	logger   *zap.Logger
}

func NewBlogService(postRepo mysql.BlogPostRepository, views ViewRecorder, site config.SiteInfo, logger *zap.Logger) BlogService {
	return &blogService{postRepo: postRepo, views: views, site: site, logger: logger}
}

func (s *blogService) List(ctx context.Context, q *dto.BlogListQuery, publicOnly bool) (*vo.PageVO[*vo.BlogPostSummaryVO], error) {
	q.Normalize()
	filter := mysql.BlogPostFilter{
		Status:   q.Status,
		Category: q.Category,
		Tag:      q.Tag,
		Search:   strings.TrimSpace(q.Search),
		Offset:   q.GetOffset(),
		Limit:    q.PageSize,
	}
	if publicOnly {
		published := entities.PostStatusPublished
		filter.Status = &published
	}
	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询博客列表失败: %w", err)
	}
	page := vo.NewPageVO(vo.NewBlogPostSummaryVOs(posts), total, q.Page, q.PageSize)
	return &page, nil
}

func (s *blogService) GetByID(ctx context.Context, id uint64) (*vo.BlogPostVO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询文章(ID: %d)失败: %w", id, err)
	}
	return vo.NewBlogPostVO(post), nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug, visitor string) (*vo.BlogPostDetailVO, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("查询文章(slug: %s)失败: %w", slug, err)
	}
	if post == nil || post.Status != entities.PostStatusPublished {
		return nil, nil
	}

	detail := vo.NewBlogPostVO(post)
	detail.StructuredData = seo.BlogPostingJSONLD(post, s.site)
	detail.ViewCount += recordView(ctx, s.views, s.logger, constant.ViewKindBlog, post.ID, visitor)

	candidates, err := s.postRepo.ListPublished(ctx, relatedCandidateLimit)
	if err != nil {
		// 相关文章只是附加信息，查询失败时正文照常返回
		s.logger.Warn("查询相关文章失败", zap.Uint64("postID", post.ID), zap.Error(err))
		candidates = nil
	}
	return &vo.BlogPostDetailVO{
		Post:         detail,
		RelatedPosts: vo.NewBlogPostSummaryVOs(RelatedByTags(post, candidates, constant.RelatedPostsSize)),
	}, nil
}

// RelatedByTags 按共同标签数从多到少挑选相关文章，数量相同时保持 candidates 原有顺序（发布时间倒序）。
// 没有共同标签的文章不入选。
func RelatedByTags(post *entities.BlogPost, candidates []*entities.BlogPost, limit int) []*entities.BlogPost {
	if post == nil || len(post.Tags) == 0 || limit <= 0 {
		return []*entities.BlogPost{}
	}
	own := make(map[string]bool, len(post.Tags))
	for _, t := range post.Tags {
		own[strings.ToLower(strings.TrimSpace(t))] = true
	}

	type scored struct {
		post   *entities.BlogPost
		shared int
	}
	var ranked []scored
	for _, c := range candidates {
		if c == nil || c.ID == post.ID {
			continue
		}
		shared := 0
		seen := make(map[string]bool, len(c.Tags))
		for _, t := range c.Tags {
			key := strings.ToLower(strings.TrimSpace(t))
			if own[key] && !seen[key] {
				shared++
				seen[key] = true
			}
		}
		if shared > 0 {
			ranked = append(ranked, scored{post: c, shared: shared})
		}
	}
	// 插入排序保证稳定
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].shared > ranked[j-1].shared; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	out := make([]*entities.BlogPost, 0, limit)
	for _, r := range ranked {
		if len(out) == limit {
			break
		}
		out = append(out, r.post)
	}
	return out
}

func (s *blogService) Create(ctx context.Context, req *dto.BlogPostRequest) (*vo.BlogPostVO, error) {
	slug, err := resolveSlug(ctx, req.Slug, req.Title, "post", 0, s.postRepo.SlugExists)
	if err != nil {
		return nil, err
	}
	body, err := postBody(req)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entities.PostStatusDraft
	}

	post := &entities.BlogPost{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Excerpt:     req.Excerpt,
		Content:     body,
		AuthorName:  req.AuthorName,
		AuthorTitle: req.AuthorTitle,
		AuthorImage: req.AuthorImage,
		Category:    strings.TrimSpace(req.Category),
		Tags:        datatypes.JSONSlice[string](cleanTags(req.Tags)),
		Image:       req.Image,
		Status:      status,
		PublishedAt: publishedAt(status, req.PublishedAt, nil),
	}
	if err := s.postRepo.Create(ctx, post, req.RelatedProductIDs); err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}
	s.logger.Info("文章已创建", zap.Uint64("postID", post.ID), zap.String("slug", post.Slug))
	return s.GetByID(ctx, post.ID)
}

func (s *blogService) Update(ctx context.Context, id uint64, req *dto.BlogPostRequest) (*vo.BlogPostVO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询文章(ID: %d)失败: %w", id, err)
	}
	if post == nil {
		return nil, fmt.Errorf("文章(ID: %d): %w", id, commonerrors.ErrRepoNotFound)
	}
	body, err := postBody(req)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = post.Status
	}

	updates := map[string]interface{}{
		"title":        strings.TrimSpace(req.Title),
		"excerpt":      req.Excerpt,
		"content":      body,
		"author_name":  req.AuthorName,
		"author_title": req.AuthorTitle,
		"author_image": req.AuthorImage,
		"category":     strings.TrimSpace(req.Category),
		"tags":         datatypes.JSONSlice[string](cleanTags(req.Tags)),
		"image":        req.Image,
		"status":       status,
		"published_at": publishedAt(status, req.PublishedAt, post.PublishedAt),
	}
	if req.Slug != "" && content.Slugify(req.Slug) != post.Slug {
		slug, err := resolveSlug(ctx, req.Slug, req.Title, "post", id, s.postRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}
	if err := s.postRepo.Update(ctx, id, updates, req.RelatedProductIDs); err != nil {
		return nil, fmt.Errorf("更新文章(ID: %d)失败: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// postBody 有内容块时以内容块生成的 HTML 为准。
func postBody(req *dto.BlogPostRequest) (string, error) {
	raw := strings.TrimSpace(string(req.Blocks))
	if raw == "" || raw == "null" {
		return req.Content, nil
	}
	html, err := content.BlocksToHTML(req.Blocks)
	if err != nil {
		return "", fmt.Errorf("%w: %v", myErrors.ErrInvalidContent, err)
	}
	return html, nil
}

// publishedAt 首次发布时补齐发布时间，显式传入的时间优先。
func publishedAt(status entities.PostStatus, requested, current *time.Time) *time.Time {
	if requested != nil {
		return requested
	}
	if current != nil {
		return current
	}
	if status == entities.PostStatusPublished {
		now := time.Now()
		return &now
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func (s *blogService) Delete(ctx context.Context, id uint64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除文章(ID: %d)失败: %w", id, err)
	}
	s.logger.Info("文章已删除", zap.Uint64("postID", id))
	return nil
}

func (s *blogService) Like(ctx context.Context, id uint64) (int64, error) {
	likes, err := s.postRepo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("文章(ID: %d)点赞失败: %w", id, err)
	}
	return likes, nil
}

func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.postRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询文章分类失败: %w", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

func (s *blogService) PostsForProduct(ctx context.Context, productID uint64) ([]*vo.BlogPostSummaryVO, error) {
	posts, err := s.postRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("查询产品关联文章失败: %w", err)
	}
	return vo.NewBlogPostSummaryVOs(posts), nil
}

func (s *blogService) PreviewBlocks(raw []byte) (*vo.HTMLVO, error) {
	html, err := content.BlocksToHTML(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", myErrors.ErrInvalidContent, err)
	}
	return &vo.HTMLVO{HTML: html}, nil
}
