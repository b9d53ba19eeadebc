package vo

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// ProductVO 产品视图对象，前台详情与后台编辑共用
type ProductVO struct {
	ID             uint64                    `json:"id"`
	Name           string                    `json:"name"`
	Slug           string                    `json:"slug"`
	CategoryID     *uint64                   `json:"category_id"`
	Manufacturer   string                    `json:"manufacturer"`
	Price          string                    `json:"price"`
	Description    string                    `json:"description"`
	TechnicalSpecs []entities.TechnicalSpec  `json:"technical_specs"`
	AdditionalInfo []entities.AdditionalInfo `json:"additional_info"`
	Images         []entities.ProductImage   `json:"images"`
	Videos         []string                  `json:"videos"`
	SEO            entities.ProductSEO       `json:"seo"`
	StructuredData string                    `json:"structured_data"`
	ViewCount      int64                     `json:"view_count"`
	Status         entities.ProductStatus    `json:"status"`
	Featured       bool                      `json:"featured"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// ProductSummaryVO 列表卡片使用的精简产品信息
type ProductSummaryVO struct {
	ID           uint64                 `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	CategoryID   *uint64                `json:"category_id"`
	Manufacturer string                 `json:"manufacturer"`
	Price        string                 `json:"price"`
	Image        string                 `json:"image"`
	ViewCount    int64                  `json:"view_count"`
	Status       entities.ProductStatus `json:"status"`
	Featured     bool                   `json:"featured"`
}

// NewProductVO 将产品实体转换为视图对象，JSON 列为空时输出空切片。
func NewProductVO(p *entities.Product) *ProductVO {
	if p == nil {
		return nil
	}
	return &ProductVO{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		CategoryID:     p.CategoryID,
		Manufacturer:   p.Manufacturer,
		Price:          p.Price,
		Description:    p.Description,
		TechnicalSpecs: nonNil([]entities.TechnicalSpec(p.TechnicalSpecs)),
		AdditionalInfo: nonNil([]entities.AdditionalInfo(p.AdditionalInfo)),
		Images:         nonNil([]entities.ProductImage(p.Images)),
		Videos:         nonNil([]string(p.Videos)),
		SEO:            p.SEO.Data(),
		StructuredData: p.StructuredData,
		ViewCount:      p.ViewCount,
		Status:         p.Status,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewProductSummaryVOs 批量转换为列表卡片，取第一张图片作为封面。
func NewProductSummaryVOs(products []*entities.Product) []*ProductSummaryVO {
	out := make([]*ProductSummaryVO, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		var cover string
		if len(p.Images) > 0 {
			cover = p.Images[0].URL
		}
		out = append(out, &ProductSummaryVO{
			ID:           p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			CategoryID:   p.CategoryID,
			Manufacturer: p.Manufacturer,
			Price:        p.Price,
			Image:        cover,
			ViewCount:    p.ViewCount,
			Status:       p.Status,
			Featured:     p.Featured,
		})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
