package dto

import "github.com/Xushengqwer/trade_site/models/entities"

// ContactRequest 前台联系/询价表单
type ContactRequest struct {
	Name      string  `json:"name" binding:"required,max=120"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     string  `json:"phone" binding:"omitempty,max=60"`
	Company   string  `json:"company" binding:"omitempty,max=255"`
	Country   string  `json:"country" binding:"omitempty,max=120"`
	Subject   string  `json:"subject" binding:"omitempty,max=255"`
	Message   string  `json:"message" binding:"required,max=5000"`
	ProductID *uint64 `json:"product_id"`
}

// MessageListQuery 后台询盘列表查询
type MessageListQuery struct {
	PageQuery
	Status *entities.MessageStatus `form:"status" json:"status,omitempty"`
	Search string                  `form:"search" json:"search,omitempty" binding:"omitempty,max=120"`
}

// MessageStatusRequest 修改单条询盘状态
type MessageStatusRequest struct {
	Status entities.MessageStatus `json:"status" binding:"required"`
}

// BulkMessageStatusRequest 批量修改询盘状态
type BulkMessageStatusRequest struct {
	IDs    []uint64               `json:"ids" binding:"required,min=1"`
	Status entities.MessageStatus `json:"status" binding:"required"`
}
