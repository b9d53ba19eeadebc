package dto

import (
	"encoding/json"
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// BlogListQuery 博客列表查询参数
type BlogListQuery struct {
	PageQuery
	Status   *entities.PostStatus `form:"status" json:"status,omitempty"`
	Category string               `form:"category" json:"category,omitempty"`
	Tag      string               `form:"tag" json:"tag,omitempty"`
	Search   string               `form:"search" json:"search,omitempty" binding:"omitempty,max=120"`
}

// BlogPostRequest 新建/更新博客文章
// - Content 与 Blocks 二选一；提供 Blocks 时由内容块转换为 HTML 覆盖 Content。
type BlogPostRequest struct {
	Title             string              `json:"title" binding:"required,max=255"`
	Slug              string              `json:"slug" binding:"omitempty,max=255"`
	Excerpt           string              `json:"excerpt"`
	Content           string              `json:"content"`
	Blocks            json.RawMessage     `json:"blocks,omitempty" swaggertype:"array,object"`
	AuthorName        string              `json:"author_name" binding:"omitempty,max=120"`
	AuthorTitle       string              `json:"author_title" binding:"omitempty,max=120"`
	AuthorImage       string              `json:"author_image" binding:"omitempty,max=1023"`
	Category          string              `json:"category" binding:"omitempty,max=120"`
	Tags              []string            `json:"tags"`
	Image             string              `json:"image" binding:"omitempty,max=1023"`
	Status            entities.PostStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishedAt       *time.Time          `json:"published_at"`
	RelatedProductIDs []uint64            `json:"related_product_ids"`
}

// BlocksPreviewRequest 内容块转 HTML 预览
type BlocksPreviewRequest struct {
	Blocks json.RawMessage `json:"blocks" binding:"required" swaggertype:"array,object"`
}
