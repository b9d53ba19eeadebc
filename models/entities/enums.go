package entities

// ProductStatus 产品上架状态
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// Valid 判断状态值是否合法。
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	}
	return false
}

// PostStatus 博客文章发布状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// MessageStatus 询盘处理状态，存储值为站点后台使用的土耳其语标签。
// 流转: Yeni(新) -> Okundu(已读) -> Yanıtlandı(已回复) -> Arşivlendi(已归档)
type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "Yeni"
	MessageStatusRead     MessageStatus = "Okundu"
	MessageStatusReplied  MessageStatus = "Yanıtlandı"
	MessageStatusArchived MessageStatus = "Arşivlendi"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusArchived:
		return true
	}
	return false
}

// rank 返回状态在主流程中的位置，用于判断是否前进。
func (s MessageStatus) rank() int {
	switch s {
	case MessageStatusNew:
		return 0
	case MessageStatusRead:
		return 1
	case MessageStatusReplied:
		return 2
	case MessageStatusArchived:
		return 3
	}
	return -1
}

// CanTransitionTo 判断询盘状态能否从 s 流转到 next。
// - 主流程只允许前进（可跳过中间状态），任何状态都可以归档。
// - 已归档可以恢复为已读。
// - 相同状态视为合法（幂等）。
func (s MessageStatus) CanTransitionTo(next MessageStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s == MessageStatusArchived {
		return next == MessageStatusRead
	}
	return next.rank() > s.rank()
}

// OpportunityStatus 内容机会的处理状态
type OpportunityStatus string

const (
	OpportunityStatusOpen    OpportunityStatus = "open"
	OpportunityStatusPlanned OpportunityStatus = "planned"
	OpportunityStatusCovered OpportunityStatus = "covered"
)

func (s OpportunityStatus) Valid() bool {
	switch s {
	case OpportunityStatusOpen, OpportunityStatusPlanned, OpportunityStatusCovered:
		return true
	}
	return false
}

// TaskPriority SEO 任务优先级
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// TaskStatus SEO 任务状态
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}
