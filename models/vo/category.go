package vo

import "github.com/Xushengqwer/trade_site/models/entities"

// CategoryVO 分类视图对象，ProductCount 为列表查询时统计的产品数量
type CategoryVO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
	ProductCount int64  `json:"product_count"`
}

func NewCategoryVO(c *entities.Category, productCount int64) *CategoryVO {
	if c == nil {
		return nil
	}
	return &CategoryVO{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        c.Image,
		DisplayOrder: c.DisplayOrder,
		ProductCount: productCount,
	}
}
