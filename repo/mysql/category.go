package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// CategoryRepository 产品分类的持久化操作。
type CategoryRepository interface {
	// List 按 display_order 升序返回全部分类。
	List(ctx context.Context) ([]*entities.Category, error)
	// ProductCounts 统计每个分类下的产品数量（不含已删除产品），没有产品的分类不出现在结果中。
	ProductCounts(ctx context.Context) (map[uint64]int64, error)
	// GetByID / GetBySlug 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
	// SlugExists 判断 slug 是否已被占用（包含软删除记录，唯一索引同样覆盖它们）。
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)
	// NextDisplayOrder 返回新分类应使用的排序值。
	NextDisplayOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, category *entities.Category) error
	Update(ctx context.Context, id uint64, updates map[string]interface{}) error
	// UpdateDisplayOrder 单独更新一条分类的排序值，批量排序由服务层逐条调用。
	UpdateDisplayOrder(ctx context.Context, id uint64, order int) error
	// Delete 软删除分类，并把该分类下产品的 category_id 置空。
	Delete(ctx context.Context, id uint64) error
}

type categoryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&categories).Error; err != nil {
		r.logger.Error("查询分类列表失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) ProductCounts(ctx context.Context) (map[uint64]int64, error) {
	var rows []struct {
		CategoryID uint64
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&entities.Product{}).
		Select("category_id, COUNT(*) AS total").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("统计分类产品数量失败", zap.Error(err))
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint64) (*entities.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *categoryRepository) first(ctx context.Context, query string, arg interface{}) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).Where(query, arg).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("查询分类失败", zap.String("条件", query), zap.Any("参数", arg), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Unscoped().Model(&entities.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	var maxOrder sql.NullInt64
	err := r.db.WithContext(ctx).Model(&entities.Category{}).Select("MAX(display_order)").Row().Scan(&maxOrder)
	if err != nil {
		return 0, err
	}
	if !maxOrder.Valid {
		return 0, nil
	}
	return int(maxOrder.Int64) + 1, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		r.logger.Error("创建分类失败", zap.String("slug", category.Slug), zap.Error(err))
		return err
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新分类失败", zap.Uint64("categoryID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *categoryRepository) UpdateDisplayOrder(ctx context.Context, id uint64, order int) error {
	result := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", id).Update("display_order", order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("删除分类失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		if err := tx.Model(&entities.Product{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("解除产品与分类的关联失败: %w", err)
		}
		return nil
	})
}
