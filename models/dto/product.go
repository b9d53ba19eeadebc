package dto

import "github.com/Xushengqwer/trade_site/models/entities"

// ProductListQuery 产品列表查询参数（前台与后台共用）
type ProductListQuery struct {
	PageQuery
	CategoryID   *uint64                 `form:"category_id" json:"category_id,omitempty"`
	CategorySlug string                  `form:"category" json:"category,omitempty"`
	Status       *entities.ProductStatus `form:"status" json:"status,omitempty"`
	Featured     *bool                   `form:"featured" json:"featured,omitempty"`
	Search       string                  `form:"search" json:"search,omitempty" binding:"omitempty,max=120"`
	// Sort 可选 newest / views / name，默认 newest
	Sort string `form:"sort" json:"sort,omitempty" binding:"omitempty,oneof=newest views name"`
}

// ProductRequest 新建/整体更新产品的请求体
type ProductRequest struct {
	Name           string                    `json:"name" binding:"required,max=255"`
	Slug           string                    `json:"slug" binding:"omitempty,max=255"`
	CategoryID     *uint64                   `json:"category_id"`
	Manufacturer   string                    `json:"manufacturer" binding:"omitempty,max=255"`
	Price          string                    `json:"price" binding:"omitempty,max=120"`
	Description    string                    `json:"description"`
	TechnicalSpecs []entities.TechnicalSpec  `json:"technical_specs"`
	AdditionalInfo []entities.AdditionalInfo `json:"additional_info"`
	Images         []entities.ProductImage   `json:"images"`
	Videos         []string                  `json:"videos"`
	SEO            entities.ProductSEO       `json:"seo"`
	StructuredData string                    `json:"structured_data"`
	Status         entities.ProductStatus    `json:"status" binding:"omitempty,oneof=draft active archived"`
	Featured       bool                      `json:"featured"`
}

// BulkProductStatusRequest 批量修改产品状态
type BulkProductStatusRequest struct {
	IDs    []uint64               `json:"ids" binding:"required,min=1"`
	Status entities.ProductStatus `json:"status" binding:"required,oneof=draft active archived"`
}

// ProductUpdateRequest 局部更新产品，只修改请求中出现的字段。
// - CategoryID 传 0 表示移出分类。
type ProductUpdateRequest struct {
	Name           *string                    `json:"name" binding:"omitempty,min=1,max=255"`
	Slug           *string                    `json:"slug" binding:"omitempty,max=255"`
	CategoryID     *uint64                    `json:"category_id"`
	Manufacturer   *string                    `json:"manufacturer" binding:"omitempty,max=255"`
	Price          *string                    `json:"price" binding:"omitempty,max=120"`
	Description    *string                    `json:"description"`
	TechnicalSpecs *[]entities.TechnicalSpec  `json:"technical_specs"`
	AdditionalInfo *[]entities.AdditionalInfo `json:"additional_info"`
	Images         *[]entities.ProductImage   `json:"images"`
	Videos         *[]string                  `json:"videos"`
	SEO            *entities.ProductSEO       `json:"seo"`
	StructuredData *string                    `json:"structured_data"`
	Status         *entities.ProductStatus    `json:"status" binding:"omitempty,oneof=draft active archived"`
	Featured       *bool                      `json:"featured"`
}

// PromptQuery 产品 AI 提示词类型：description 为产品描述，seo 为 SEO 元数据
type PromptQuery struct {
	Kind string `form:"kind" json:"kind" binding:"omitempty,oneof=description seo"`
}
