package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// SEOTask 产品级 SEO 待办事项
type SEOTask struct {
	entities.BaseModel

	ProductID   uint64       `gorm:"not null;index"`
	Title       string       `gorm:"type:varchar(255);not null"`
	Description string       `gorm:"type:text"`
	Priority    TaskPriority `gorm:"type:varchar(10);default:'medium'"`
	Status      TaskStatus   `gorm:"type:varchar(20);default:'todo';index"`
	DueDate     *time.Time
}

// TableName 显式指定表名，避免 GORM 生成 "seo_tasks" 以外的蛇形名。
func (SEOTask) TableName() string { return "seo_tasks" }
