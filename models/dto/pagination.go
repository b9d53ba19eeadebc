package dto

import "github.com/Xushengqwer/trade_site/constant"

// PageQuery 通用页码分页参数，嵌入到各列表请求中。
type PageQuery struct {
	Page     int `form:"page" json:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size" json:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// Normalize 补齐缺省值并限制上限。
func (p *PageQuery) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = constant.DefaultPageSize
	}
	if p.PageSize > constant.MaxPageSize {
		p.PageSize = constant.MaxPageSize
	}
}

// GetOffset 计算分页偏移量。
func (p *PageQuery) GetOffset() int {
	if p.Page <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// IDsRequest 批量操作的 ID 列表
type IDsRequest struct {
	IDs []uint64 `json:"ids" binding:"required,min=1"`
}

// LimitQuery 不分页列表（精选/热门/相关）的条数参数
type LimitQuery struct {
	Limit int `form:"limit" json:"limit" binding:"omitempty,gte=1,lte=50"`
}

// LimitOr 未指定条数时返回 def。
func (q LimitQuery) LimitOr(def int) int {
	if q.Limit <= 0 {
		return def
	}
	return q.Limit
}
