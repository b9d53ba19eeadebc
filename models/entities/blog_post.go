package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
	"gorm.io/datatypes"
)

// BlogPost 博客文章实体
// - 表名: blog_posts
// - 关系: 与 Product 多对多（blog_post_products），用于文章内推荐产品与产品的反向链接统计。
type BlogPost struct {
	entities.BaseModel

	Title   string `gorm:"type:varchar(255);not null"`
	Slug    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Excerpt string `gorm:"type:text"`
	Content string `gorm:"type:longtext"`

	AuthorName  string `gorm:"type:varchar(120)"`
	AuthorTitle string `gorm:"type:varchar(120)"`
	AuthorImage string `gorm:"type:varchar(1023)"`

	Category string                      `gorm:"type:varchar(120);index"`
	Tags     datatypes.JSONSlice[string] `gorm:"type:json"`
	Image    string                      `gorm:"type:varchar(1023)"`

	Status       PostStatus `gorm:"type:varchar(20);default:'draft';index"`
	ViewCount    int64      `gorm:"default:0"`
	LikeCount    int64      `gorm:"default:0"`
	CommentCount int64      `gorm:"default:0"`
	PublishedAt  *time.Time `gorm:"index"`

	RelatedProducts []*Product `gorm:"many2many:blog_post_products;"`
}
