package vo

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// ProductSEOAnalysisVO 单个产品的 SEO 分析结果
type ProductSEOAnalysisVO struct {
	ProductID          uint64   `json:"product_id"`
	ProductName        string   `json:"product_name"`
	Slug               string   `json:"slug"`
	Score              int      `json:"score"`
	HasMetaDescription bool     `json:"has_meta_description"`
	Backlinks          int      `json:"backlinks"`
	Keyword            string   `json:"keyword"`
	KeywordDensity     float64  `json:"keyword_density"`
	Views              int64    `json:"views"`
	ImageCount         int      `json:"image_count"`
	ImagesWithAlt      int      `json:"images_with_alt"`
	Recommendations    []string `json:"recommendations"`
}

// SEOOverviewVO 全站产品 SEO 概览，Products 按得分升序排列
type SEOOverviewVO struct {
	AverageScore float64                 `json:"average_score"`
	Products     []*ProductSEOAnalysisVO `json:"products"`
}

// SEOTaskVO SEO 任务
type SEOTaskVO struct {
	ID          uint64                `json:"id"`
	ProductID   uint64                `json:"product_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    entities.TaskPriority `json:"priority"`
	Status      entities.TaskStatus   `json:"status"`
	DueDate     *time.Time            `json:"due_date"`
	CreatedAt   time.Time             `json:"created_at"`
}

func NewSEOTaskVO(t *entities.SEOTask) *SEOTaskVO {
	if t == nil {
		return nil
	}
	return &SEOTaskVO{
		ID:          t.ID,
		ProductID:   t.ProductID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func NewSEOTaskVOs(tasks []*entities.SEOTask) []*SEOTaskVO {
	out := make([]*SEOTaskVO, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			out = append(out, NewSEOTaskVO(t))
		}
	}
	return out
}
