package dto

import "github.com/Xushengqwer/trade_site/models/entities"

// OpportunityStatusRequest 修改内容机会状态
type OpportunityStatusRequest struct {
	Status entities.OpportunityStatus `json:"status" binding:"required,oneof=open planned covered"`
}

// OpportunityLinkRequest 关联/取消关联博客文章
type OpportunityLinkRequest struct {
	BlogPostID uint64 `json:"blog_post_id" binding:"required"`
}
