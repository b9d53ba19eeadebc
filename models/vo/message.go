package vo

import (
	"time"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// MessageVO 询盘视图对象
type MessageVO struct {
	ID        uint64                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Company   string                 `json:"company"`
	Country   string                 `json:"country"`
	Subject   string                 `json:"subject"`
	Message   string                 `json:"message"`
	ProductID *uint64                `json:"product_id"`
	Status    entities.MessageStatus `json:"status"`
	ReadAt    *time.Time             `json:"read_at"`
	RepliedAt *time.Time             `json:"replied_at"`
	CreatedAt time.Time              `json:"created_at"`
}

// UnreadCountVO 未读询盘数量
type UnreadCountVO struct {
	Count int64 `json:"count"`
}

func NewMessageVO(m *entities.Message) *MessageVO {
	if m == nil {
		return nil
	}
	return &MessageVO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Company:   m.Company,
		Country:   m.Country,
		Subject:   m.Subject,
		Message:   m.Message,
		ProductID: m.ProductID,
		Status:    m.Status,
		ReadAt:    m.ReadAt,
		RepliedAt: m.RepliedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewMessageVOs(msgs []*entities.Message) []*MessageVO {
	out := make([]*MessageVO, 0, len(msgs))
	for _, m := range msgs {
		if m != nil {
			out = append(out, NewMessageVO(m))
		}
	}
	return out
}
