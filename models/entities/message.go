package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Message 联系表单/询价提交
// - 表名: messages
// - 状态流转见 MessageStatus.CanTransitionTo
type Message struct {
	entities.BaseModel

	Name    string `gorm:"type:varchar(120);not null"`
	Email   string `gorm:"type:varchar(255);not null;index"`
	Phone   string `gorm:"type:varchar(60)"`
	Company string `gorm:"type:varchar(255)"`
	Country string `gorm:"type:varchar(120)"`
	Subject string `gorm:"type:varchar(255)"`
	Message string `gorm:"type:text;not null"`

	// ProductID 询价时关联的产品，可为空
	ProductID *uint64 `gorm:"index"`

	Status    MessageStatus `gorm:"type:varchar(20);default:'Yeni';index"`
	ReadAt    *time.Time
	RepliedAt *time.Time

	IP string `gorm:"type:varchar(64)"`
}
