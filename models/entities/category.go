package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Category 产品分类实体
// - 表名: categories
// - DisplayOrder 由后台拖拽排序写入，列表按其升序展示。
// - 产品数量不落库，列表查询时通过 COUNT 计算。
type Category struct {
	entities.BaseModel

	Name         string `gorm:"type:varchar(120);not null"`
	Slug         string `gorm:"type:varchar(160);not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	Image        string `gorm:"type:varchar(1023)"`
	DisplayOrder int    `gorm:"default:0;index"`
}
