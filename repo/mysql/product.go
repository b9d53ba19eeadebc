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

// ProductFilter 产品列表查询条件，零值字段表示不过滤。
type ProductFilter struct {
	CategoryID *uint64
	Status     *entities.ProductStatus
	Featured   *bool
	// Search 对名称与制造商做模糊匹配
	Search string
	// Sort newest（默认）/ views / name
	Sort   string
	Offset int
	Limit  int
}

// ProductRepository 产品的持久化操作。
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// CreateBatch 在单个事务中创建多个产品，任一失败全部回滚。
	CreateBatch(ctx context.Context, products []*entities.Product) error
	// Update 按字段更新；JSON 列直接传 datatypes 值即可。
	Update(ctx context.Context, id uint64, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uint64, status entities.ProductStatus) error
	Delete(ctx context.Context, id uint64) error

	// GetByID / GetBySlug 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Product, error)
	// GetByIDs 结果顺序不保证与 ids 一致。
	GetByIDs(ctx context.Context, ids []uint64) ([]*entities.Product, error)
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	List(ctx context.Context, filter ProductFilter) ([]*entities.Product, int64, error)
	// ListAll 返回全部未删除产品，供 SEO 概览与内容机会计算使用。
	ListAll(ctx context.Context) ([]*entities.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]*entities.Product, error)
	// ListRelated 同分类的其他上架产品。
	ListRelated(ctx context.Context, categoryID uint64, excludeID uint64, limit int) ([]*entities.Product, error)
	TopViewed(ctx context.Context, limit int) ([]*entities.Product, error)
	CountByStatus(ctx context.Context) (map[entities.ProductStatus]int64, error)
}

type productRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProductRepository(db *gorm.DB, logger *zap.Logger) ProductRepository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.Error("创建产品失败", zap.String("slug", product.Slug), zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepository) CreateBatch(ctx context.Context, products []*entities.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, p := range products {
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("批量导入第 %d 个产品失败: %w", i, err)
			}
		}
		return nil
	})
}

func (r *productRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entities.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新产品失败", zap.Uint64("productID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新产品但未找到记录或记录已被删除", zap.Uint64("productID", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *productRepository) UpdateStatus(ctx context.Context, id uint64, status entities.ProductStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *productRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Product{}, id)
	if result.Error != nil {
		r.logger.Error("删除产品失败", zap.Uint64("productID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint64) (*entities.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *productRepository) first(ctx context.Context, query string, arg interface{}) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where(query, arg).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("查询产品失败", zap.String("条件", query), zap.Any("参数", arg), zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uint64) ([]*entities.Product, error) {
	var products []*entities.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		r.logger.Error("按 ID 批量查询产品失败", zap.Int("id数量", len(ids)), zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Unscoped().Model(&entities.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*entities.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Product{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR manufacturer LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Error("统计产品数量失败", zap.Error(err))
		return nil, 0, err
	}

	switch filter.Sort {
	case "views":
		q = q.Order("view_count DESC, id DESC")
	case "name":
		q = q.Order("name ASC, id ASC")
	default:
		q = q.Order("created_at DESC, id DESC")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var products []*entities.Product
	if err := q.Find(&products).Error; err != nil {
		r.logger.Error("查询产品列表失败", zap.Error(err))
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		r.logger.Error("查询全部产品失败", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	err := r.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, entities.ProductStatusActive).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		r.logger.Error("查询推荐产品失败", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListRelated(ctx context.Context, categoryID uint64, excludeID uint64, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ? AND status = ?", categoryID, excludeID, entities.ProductStatusActive).
		Order("view_count DESC, id DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		r.logger.Error("查询相关产品失败", zap.Uint64("categoryID", categoryID), zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) TopViewed(ctx context.Context, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	err := r.db.WithContext(ctx).
		Where("status = ?", entities.ProductStatusActive).
		Order("view_count DESC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		r.logger.Error("查询浏览量最高的产品失败", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) CountByStatus(ctx context.Context) (map[entities.ProductStatus]int64, error) {
	var rows []struct {
		Status entities.ProductStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&entities.Product{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.ProductStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
