package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"gorm.io/datatypes"
)

// ContentOpportunity 内容机会
// - 由产品 SEO 元数据中的相关话题聚类得到，Topic 取聚类中的第一个话题。
// - 关系: 与 BlogPost 多对多（content_opportunity_posts），记录已覆盖该话题的文章。
type ContentOpportunity struct {
	entities.BaseModel

	Topic        string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Keywords     datatypes.JSONSlice[string] `gorm:"type:json"`
	ProductCount int                         `gorm:"default:0"`
	Status       OpportunityStatus           `gorm:"type:varchar(20);default:'open';index"`

	BlogPosts []*BlogPost `gorm:"many2many:content_opportunity_posts;"`
}
