package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// MessageFilter 询盘列表查询条件
type MessageFilter struct {
	Status *entities.MessageStatus
	// Search 对姓名、邮箱、公司与主题做模糊匹配
	Search string
	Offset int
	Limit  int
}

// MessageRepository 联系表单/询价消息的持久化操作。
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	// GetByID 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]*entities.Message, int64, error)
	Update(ctx context.Context, id uint64, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint64) error
	CountByStatus(ctx context.Context) (map[entities.MessageStatus]int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewMessageRepository(db *gorm.DB, logger *zap.Logger) MessageRepository {
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) Create(ctx context.Context, msg *entities.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		r.logger.Error("保存询盘失败", zap.String("email", msg.Email), zap.Error(err))
		return err
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint64) (*entities.Message, error) {
	var msg entities.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("查询询盘失败", zap.Uint64("messageID", id), zap.Error(err))
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context, filter MessageFilter) ([]*entities.Message, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Message{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR company LIKE ? OR subject LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Error("统计询盘数量失败", zap.Error(err))
		return nil, 0, err
	}
	var msgs []*entities.Message
	if total == 0 {
		return msgs, 0, nil
	}

	q = q.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Find(&msgs).Error; err != nil {
		r.logger.Error("查询询盘列表失败", zap.Error(err))
		return nil, 0, err
	}
	return msgs, total, nil
}

func (r *messageRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entities.Message{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新询盘失败", zap.Uint64("messageID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Message{}, id)
	if result.Error != nil {
		r.logger.Error("删除询盘失败", zap.Uint64("messageID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *messageRepository) CountByStatus(ctx context.Context) (map[entities.MessageStatus]int64, error) {
	var rows []struct {
		Status entities.MessageStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&entities.Message{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.MessageStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Message{}).
		Where("status = ?", entities.MessageStatusNew).
		Count(&count).Error
	return count, err
}
