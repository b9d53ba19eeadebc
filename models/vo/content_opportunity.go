package vo

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// ContentOpportunityVO 内容机会及其已关联的文章
type ContentOpportunityVO struct {
	ID           uint64                     `json:"id"`
	Topic        string                     `json:"topic"`
	Keywords     []string                   `json:"keywords"`
	ProductCount int                        `json:"product_count"`
	Status       entities.OpportunityStatus `json:"status"`
	BlogPosts    []*BlogPostSummaryVO       `json:"blog_posts"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// RegenerateResultVO 重新生成内容机会的统计
type RegenerateResultVO struct {
	Clusters int `json:"clusters"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Removed  int `json:"removed"`
}

func NewContentOpportunityVO(o *entities.ContentOpportunity) *ContentOpportunityVO {
	if o == nil {
		return nil
	}
	return &ContentOpportunityVO{
		ID:           o.ID,
		Topic:        o.Topic,
		Keywords:     nonNil([]string(o.Keywords)),
		ProductCount: o.ProductCount,
		Status:       o.Status,
		BlogPosts:    NewBlogPostSummaryVOs(o.BlogPosts),
		UpdatedAt:    o.UpdatedAt,
	}
}

func NewContentOpportunityVOs(list []*entities.ContentOpportunity) []*ContentOpportunityVO {
	out := make([]*ContentOpportunityVO, 0, len(list))
	for _, o := range list {
		if o != nil {
			out = append(out, NewContentOpportunityVO(o))
		}
	}
	return out
}
