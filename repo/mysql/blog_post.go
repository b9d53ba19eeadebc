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

// BlogPostFilter 博客列表查询条件
type BlogPostFilter struct {
	Status   *entities.PostStatus
	Category string
	Tag      string
	// Search 对标题与摘要做模糊匹配
	Search string
	Offset int
	Limit  int
}

// BlogPostRepository 博客文章的持久化操作。
type BlogPostRepository interface {
	// Create 创建文章并关联推荐产品。
	Create(ctx context.Context, post *entities.BlogPost, relatedProductIDs []uint64) error
	// Update 更新字段；relatedProductIDs 为 nil 时不改动关联，非 nil（含空切片）时整体替换。
	Update(ctx context.Context, id uint64, updates map[string]interface{}, relatedProductIDs []uint64) error
	// Delete 软删除文章并清除产品关联。
	Delete(ctx context.Context, id uint64) error
	// IncrementLikes 只对已发布文章计数；草稿、归档或不存在时返回 ErrRepoNotFound。
	IncrementLikes(ctx context.Context, id uint64) (int64, error)

	// GetByID / GetBySlug 预加载推荐产品，未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*entities.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	List(ctx context.Context, filter BlogPostFilter) ([]*entities.BlogPost, int64, error)
	// ListPublished 按发布时间倒序返回已发布文章，limit<=0 表示不限制。
	ListPublished(ctx context.Context, limit int) ([]*entities.BlogPost, error)
	// ListByProduct 返回通过推荐产品关联到该产品的已发布文章。
	ListByProduct(ctx context.Context, productID uint64) ([]*entities.BlogPost, error)
	// LinkedPostIDsByProduct 返回 产品ID -> 关联文章ID 列表，只统计已发布文章。
	LinkedPostIDsByProduct(ctx context.Context) (map[uint64][]uint64, error)
	// Categories 返回已发布文章使用过的分类（去重、按名称排序）。
	Categories(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context) (map[entities.PostStatus]int64, error)
}

type blogPostRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewBlogPostRepository(db *gorm.DB, logger *zap.Logger) BlogPostRepository {
	return &blogPostRepository{db: db, logger: logger}
}

func (r *blogPostRepository) Create(ctx context.Context, post *entities.BlogPost, relatedProductIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 关联由下面显式替换，避免 Create 时级联写入产品
		if err := tx.Omit("RelatedProducts").Create(post).Error; err != nil {
			r.logger.Error("创建博客文章失败", zap.String("slug", post.Slug), zap.Error(err))
			return err
		}
		return replaceRelatedProducts(tx, post, relatedProductIDs)
	})
}

func (r *blogPostRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}, relatedProductIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post entities.BlogPost
		if err := tx.Select("id").Where("id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&entities.BlogPost{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				r.logger.Error("更新博客文章失败", zap.Uint64("postID", id), zap.Error(err))
				return err
			}
		}
		if relatedProductIDs == nil {
			return nil
		}
		return replaceRelatedProducts(tx, &post, relatedProductIDs)
	})
}

func replaceRelatedProducts(tx *gorm.DB, post *entities.BlogPost, productIDs []uint64) error {
	products := make([]*entities.Product, 0, len(productIDs))
	if len(productIDs) > 0 {
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return fmt.Errorf("查询推荐产品失败: %w", err)
		}
	}
	if err := tx.Model(post).Association("RelatedProducts").Replace(products); err != nil {
		return fmt.Errorf("更新文章推荐产品失败: %w", err)
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := &entities.BlogPost{}
		post.ID = id
		if err := tx.Model(post).Association("RelatedProducts").Clear(); err != nil {
			return fmt.Errorf("清除文章推荐产品失败: %w", err)
		}
		result := tx.Delete(&entities.BlogPost{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return nil
	})
}

func (r *blogPostRepository) IncrementLikes(ctx context.Context, id uint64) (int64, error) {
	var likes int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.BlogPost{}).
			Where("id = ? AND status = ?", id, entities.PostStatusPublished).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return tx.Model(&entities.BlogPost{}).Select("like_count").Where("id = ?", id).Row().Scan(&likes)
	})
	return likes, err
}

func (r *blogPostRepository) GetByID(ctx context.Context, id uint64) (*entities.BlogPost, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *blogPostRepository) first(ctx context.Context, query string, arg interface{}) (*entities.BlogPost, error) {
	var post entities.BlogPost
	err := r.db.WithContext(ctx).Preload("RelatedProducts").Where(query, arg).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("查询博客文章失败", zap.String("条件", query), zap.Any("参数", arg), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) GetByIDs(ctx context.Context, ids []uint64) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if len(ids) == 0 {
		return posts, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Unscoped().Model(&entities.BlogPost{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blogPostRepository) List(ctx context.Context, filter BlogPostFilter) ([]*entities.BlogPost, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.BlogPost{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// tags 以 JSON 数组文本存储，按带引号的元素匹配，兼容 MySQL 与 SQLite
		q = q.Where("tags LIKE ?", `%"`+filter.Tag+`"%`)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR excerpt LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Error("统计博客文章数量失败", zap.Error(err))
		return nil, 0, err
	}

	var posts []*entities.BlogPost
	q = q.Order("published_at DESC, id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Find(&posts).Error; err != nil {
		r.logger.Error("查询博客文章列表失败", zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogPostRepository) ListPublished(ctx context.Context, limit int) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	q := r.db.WithContext(ctx).Where("status = ?", entities.PostStatusPublished).Order("published_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		r.logger.Error("查询已发布文章失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) ListByProduct(ctx context.Context, productID uint64) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	err := r.db.WithContext(ctx).
		Joins("JOIN blog_post_products ON blog_post_products.blog_post_id = blog_posts.id").
		Where("blog_post_products.product_id = ? AND blog_posts.status = ?", productID, entities.PostStatusPublished).
		Order("blog_posts.published_at DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("查询产品关联文章失败", zap.Uint64("productID", productID), zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) LinkedPostIDsByProduct(ctx context.Context) (map[uint64][]uint64, error) {
	var rows []struct {
		ProductID  uint64
		BlogPostID uint64
	}
	err := r.db.WithContext(ctx).Table("blog_post_products").
		Select("blog_post_products.product_id, blog_post_products.blog_post_id").
		Joins("JOIN blog_posts ON blog_posts.id = blog_post_products.blog_post_id").
		Where("blog_posts.deleted_at IS NULL AND blog_posts.status = ?", entities.PostStatusPublished).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	links := make(map[uint64][]uint64)
	for _, row := range rows {
		links[row.ProductID] = append(links[row.ProductID], row.BlogPostID)
	}
	return links, nil
}

func (r *blogPostRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&entities.BlogPost{}).
		Where("status = ? AND category <> ''", entities.PostStatusPublished).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *blogPostRepository) CountByStatus(ctx context.Context) (map[entities.PostStatus]int64, error) {
	var rows []struct {
		Status entities.PostStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&entities.BlogPost{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.PostStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
