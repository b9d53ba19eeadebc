package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// SEOTaskRepository 产品 SEO 待办的持久化操作。
type SEOTaskRepository interface {
	List(ctx context.Context, productID *uint64, status *entities.TaskStatus) ([]*entities.SEOTask, error)
	// GetByID 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.SEOTask, error)
	Create(ctx context.Context, task *entities.SEOTask) error
	Update(ctx context.Context, id uint64, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint64) error
	// CountOpen 统计未完成的任务
	CountOpen(ctx context.Context) (int64, error)
}

type seoTaskRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSEOTaskRepository(db *gorm.DB, logger *zap.Logger) SEOTaskRepository {
	return &seoTaskRepository{db: db, logger: logger}
}

func (r *seoTaskRepository) List(ctx context.Context, productID *uint64, status *entities.TaskStatus) ([]*entities.SEOTask, error) {
	var tasks []*entities.SEOTask
	q := r.db.WithContext(ctx)
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	// 未设置截止日期的排在最后
	err := q.Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, id ASC").Find(&tasks).Error
	if err != nil {
		r.logger.Error("查询 SEO 任务失败", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (r *seoTaskRepository) GetByID(ctx context.Context, id uint64) (*entities.SEOTask, error) {
	var task entities.SEOTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *seoTaskRepository) Create(ctx context.Context, task *entities.SEOTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.logger.Error("创建 SEO 任务失败", zap.Uint64("productID", task.ProductID), zap.Error(err))
		return err
	}
	return nil
}

func (r *seoTaskRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entities.SEOTask{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *seoTaskRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.SEOTask{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *seoTaskRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.SEOTask{}).Where("status <> ?", entities.TaskStatusDone).Count(&count).Error
	return count, err
}
