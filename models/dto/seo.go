package dto

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// SEOTaskQuery SEO 任务列表筛选
type SEOTaskQuery struct {
	ProductID *uint64              `form:"product_id" json:"product_id,omitempty"`
	Status    *entities.TaskStatus `form:"status" json:"status,omitempty"`
}

// SEOTaskRequest 新建/更新 SEO 任务
type SEOTaskRequest struct {
	ProductID   uint64                `json:"product_id" binding:"required"`
	Title       string                `json:"title" binding:"required,max=255"`
	Description string                `json:"description"`
	Priority    entities.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      entities.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time            `json:"due_date"`
}
