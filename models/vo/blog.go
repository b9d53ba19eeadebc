package vo

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// BlogPostVO 博客文章详情
type BlogPostVO struct {
	ID              uint64              `json:"id"`
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Excerpt         string              `json:"excerpt"`
	Content         string              `json:"content"`
	AuthorName      string              `json:"author_name"`
	AuthorTitle     string              `json:"author_title"`
	AuthorImage     string              `json:"author_image"`
	Category        string              `json:"category"`
	Tags            []string            `json:"tags"`
	Image           string              `json:"image"`
	Status          entities.PostStatus `json:"status"`
	ViewCount       int64               `json:"view_count"`
	LikeCount       int64               `json:"like_count"`
	CommentCount    int64               `json:"comment_count"`
	PublishedAt     *time.Time          `json:"published_at"`
	RelatedProducts []*ProductSummaryVO `json:"related_products"`
	StructuredData  string              `json:"structured_data,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// BlogPostSummaryVO 列表使用的精简文章信息
type BlogPostSummaryVO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt"`
	AuthorName  string              `json:"author_name"`
	Category    string              `json:"category"`
	Tags        []string            `json:"tags"`
	Image       string              `json:"image"`
	Status      entities.PostStatus `json:"status"`
	ViewCount   int64               `json:"view_count"`
	LikeCount   int64               `json:"like_count"`
	PublishedAt *time.Time          `json:"published_at"`
}

// BlogPostDetailVO 前台文章页：正文 + 相关文章
type BlogPostDetailVO struct {
	Post         *BlogPostVO          `json:"post"`
	RelatedPosts []*BlogPostSummaryVO `json:"related_posts"`
}

func NewBlogPostVO(p *entities.BlogPost) *BlogPostVO {
	if p == nil {
		return nil
	}
	return &BlogPostVO{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		AuthorName:      p.AuthorName,
		AuthorTitle:     p.AuthorTitle,
		AuthorImage:     p.AuthorImage,
		Category:        p.Category,
		Tags:            nonNil([]string(p.Tags)),
		Image:           p.Image,
		Status:          p.Status,
		ViewCount:       p.ViewCount,
		LikeCount:       p.LikeCount,
		CommentCount:    p.CommentCount,
		PublishedAt:     p.PublishedAt,
		RelatedProducts: NewProductSummaryVOs(p.RelatedProducts),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewBlogPostSummaryVOs(posts []*entities.BlogPost) []*BlogPostSummaryVO {
	out := make([]*BlogPostSummaryVO, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		out = append(out, &BlogPostSummaryVO{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Excerpt:     p.Excerpt,
			AuthorName:  p.AuthorName,
			Category:    p.Category,
			Tags:        nonNil([]string(p.Tags)),
			Image:       p.Image,
			Status:      p.Status,
			ViewCount:   p.ViewCount,
			LikeCount:   p.LikeCount,
			PublishedAt: p.PublishedAt,
		})
	}
	return out
}

// LikesVO 点赞后的最新点赞数
type LikesVO struct {
	Likes int64 `json:"likes"`
}
