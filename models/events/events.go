// Package events 定义经 Kafka 传递的领域事件。
package events

import "time"

// ProductAction 产品变更类型
type ProductAction string

const (
	ProductCreated ProductAction = "created"
	ProductUpdated ProductAction = "updated"
	ProductDeleted ProductAction = "deleted"
)

// MessageReceivedEvent 新询盘通知，由 WhatsApp/邮件通知渠道消费。
type MessageReceivedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	MessageID uint64    `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Country   string    `json:"country,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	ProductID *uint64   `json:"product_id,omitempty"`
}

// MessageRepliedEvent 通知渠道回传：运营已在外部渠道回复该询盘。
type MessageRepliedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	MessageID uint64    `json:"message_id"`
	Channel   string    `json:"channel,omitempty"` // whatsapp / email
}

// ProductChangedEvent 产品新增/更新/删除，供搜索索引与缓存预热等下游使用。
type ProductChangedEvent struct {
	EventID   string        `json:"event_id"`
	Timestamp time.Time     `json:"timestamp"`
	Action    ProductAction `json:"action"`
	ProductID uint64        `json:"product_id"`
	Slug      string        `json:"slug"`
	Status    string        `json:"status,omitempty"`
}
