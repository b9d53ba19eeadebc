package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// ContentOpportunityRepository 内容机会的持久化操作。
type ContentOpportunityRepository interface {
	// List 预加载关联文章，status 为 nil 时返回全部。
	List(ctx context.Context, status *entities.OpportunityStatus) ([]*entities.ContentOpportunity, error)
	// GetByID 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.ContentOpportunity, error)
	// ListAllPlain 不预加载关联，供重新生成时比对使用。
	ListAllPlain(ctx context.Context) ([]*entities.ContentOpportunity, error)
	Create(ctx context.Context, o *entities.ContentOpportunity) error
	Update(ctx context.Context, id uint64, updates map[string]interface{}) error
	// Delete 物理删除（topic 唯一索引需要释放），同时清除文章关联。
	Delete(ctx context.Context, id uint64) error
	// LinkPosts 追加关联文章，已关联的忽略。
	LinkPosts(ctx context.Context, id uint64, postIDs []uint64) error
	UnlinkPost(ctx context.Context, id uint64, postID uint64) error
	CountByStatus(ctx context.Context, status entities.OpportunityStatus) (int64, error)
}

type contentOpportunityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewContentOpportunityRepository(db *gorm.DB, logger *zap.Logger) ContentOpportunityRepository {
	return &contentOpportunityRepository{db: db, logger: logger}
}

func (r *contentOpportunityRepository) List(ctx context.Context, status *entities.OpportunityStatus) ([]*entities.ContentOpportunity, error) {
	var list []*entities.ContentOpportunity
	q := r.db.WithContext(ctx).Preload("BlogPosts").Order("product_count DESC, id ASC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Find(&list).Error; err != nil {
		r.logger.Error("查询内容机会失败", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (r *contentOpportunityRepository) GetByID(ctx context.Context, id uint64) (*entities.ContentOpportunity, error) {
	var o entities.ContentOpportunity
	if err := r.db.WithContext(ctx).Preload("BlogPosts").Where("id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *contentOpportunityRepository) ListAllPlain(ctx context.Context) ([]*entities.ContentOpportunity, error) {
	var list []*entities.ContentOpportunity
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *contentOpportunityRepository) Create(ctx context.Context, o *entities.ContentOpportunity) error {
	if err := r.db.WithContext(ctx).Omit("BlogPosts").Create(o).Error; err != nil {
		r.logger.Error("创建内容机会失败", zap.String("topic", o.Topic), zap.Error(err))
		return err
	}
	return nil
}

func (r *contentOpportunityRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entities.ContentOpportunity{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *contentOpportunityRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o := &entities.ContentOpportunity{}
		o.ID = id
		if err := tx.Model(o).Association("BlogPosts").Clear(); err != nil {
			return fmt.Errorf("清除内容机会的文章关联失败: %w", err)
		}
		result := tx.Unscoped().Delete(&entities.ContentOpportunity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return nil
	})
}

func (r *contentOpportunityRepository) LinkPosts(ctx context.Context, id uint64, postIDs []uint64) error {
	if len(postIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o entities.ContentOpportunity
		if err := tx.Select("id").Where("id = ?", id).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}
		var posts []*entities.BlogPost
		if err := tx.Where("id IN ?", postIDs).Find(&posts).Error; err != nil {
			return err
		}
		if len(posts) == 0 {
			return commonerrors.ErrRepoNotFound
		}
		if err := tx.Model(&o).Association("BlogPosts").Append(posts); err != nil {
			return fmt.Errorf("关联文章失败: %w", err)
		}
		return nil
	})
}

func (r *contentOpportunityRepository) UnlinkPost(ctx context.Context, id uint64, postID uint64) error {
	o := &entities.ContentOpportunity{}
	o.ID = id
	post := &entities.BlogPost{}
	post.ID = postID
	if err := r.db.WithContext(ctx).Model(o).Association("BlogPosts").Delete(post); err != nil {
		return fmt.Errorf("取消关联文章失败: %w", err)
	}
	return nil
}

func (r *contentOpportunityRepository) CountByStatus(ctx context.Context, status entities.OpportunityStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ContentOpportunity{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
