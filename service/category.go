package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
)

// CategoryService 产品分类管理。
type CategoryService interface {
	// List 按展示顺序返回全部分类及其产品数量。
	List(ctx context.Context) ([]*vo.CategoryVO, error)
	// GetByID / GetBySlug 未找到时返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*vo.CategoryVO, error)
	GetBySlug(ctx context.Context, slug string) (*vo.CategoryVO, error)
	Create(ctx context.Context, req *dto.CategoryRequest) (*vo.CategoryVO, error)
	Update(ctx context.Context, id uint64, req *dto.CategoryRequest) (*vo.CategoryVO, error)
	// Delete 删除分类，原分类下的产品保留但不再属于任何分类。
	Delete(ctx context.Context, id uint64) error
	// Reorder 按 ids 的顺序依次写入 display_order (0,1,2...)。
	// 逐条更新，不保证原子性，失败的记录在结果中列出。
	Reorder(ctx context.Context, ids []uint64) (*vo.BulkResult, error)
}

type categoryService struct {
	categoryRepo mysql.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo mysql.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) List(ctx context.Context) ([]*vo.CategoryVO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	counts, err := s.categoryRepo.ProductCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计分类产品数量失败: %w", err)
	}
	out := make([]*vo.CategoryVO, 0, len(categories))
	for _, c := range categories {
		out = append(out, vo.NewCategoryVO(c, counts[c.ID]))
	}
	return out, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint64) (*vo.CategoryVO, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询分类(ID: %d)失败: %w", id, err)
	}
	return s.withCount(ctx, c)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*vo.CategoryVO, error) {
	c, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("查询分类(slug: %s)失败: %w", slug, err)
	}
	return s.withCount(ctx, c)
}

func (s *categoryService) withCount(ctx context.Context, c *entities.Category) (*vo.CategoryVO, error) {
	if c == nil {
		return nil, nil
	}
	counts, err := s.categoryRepo.ProductCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计分类产品数量失败: %w", err)
	}
	return vo.NewCategoryVO(c, counts[c.ID]), nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*vo.CategoryVO, error) {
	slug, err := resolveSlug(ctx, req.Slug, req.Name, "category", 0, s.categoryRepo.SlugExists)
	if err != nil {
		return nil, err
	}
	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else if order, err = s.categoryRepo.NextDisplayOrder(ctx); err != nil {
		return nil, fmt.Errorf("计算分类排序失败: %w", err)
	}

	c := &entities.Category{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slug,
		Description:  req.Description,
		Image:        req.Image,
		DisplayOrder: order,
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	s.logger.Info("分类已创建", zap.Uint64("categoryID", c.ID), zap.String("slug", c.Slug))
	return vo.NewCategoryVO(c, 0), nil
}

func (s *categoryService) Update(ctx context.Context, id uint64, req *dto.CategoryRequest) (*vo.CategoryVO, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询分类(ID: %d)失败: %w", id, err)
	}
	if c == nil {
		return nil, fmt.Errorf("分类(ID: %d): %w", id, commonerrors.ErrRepoNotFound)
	}

	c.Name = strings.TrimSpace(req.Name)
	c.Description = req.Description
	c.Image = req.Image
	updates := map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"image":       c.Image,
	}
	// 未显式给出 slug 时保留原 slug，避免已被收录的链接失效
	if req.Slug != "" && content.Slugify(req.Slug) != c.Slug {
		slug, err := resolveSlug(ctx, req.Slug, c.Name, "category", id, s.categoryRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		c.Slug = slug
		updates["slug"] = slug
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
		updates["display_order"] = c.DisplayOrder
	}
	if err := s.categoryRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("更新分类(ID: %d)失败: %w", id, err)
	}
	return s.withCount(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除分类(ID: %d)失败: %w", id, err)
	}
	s.logger.Info("分类已删除，原分类下产品已移出分类", zap.Uint64("categoryID", id))
	return nil
}

func (s *categoryService) Reorder(ctx context.Context, ids []uint64) (*vo.BulkResult, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	result := vo.NewBulkResult()
	for order, id := range ids {
		if err := s.categoryRepo.UpdateDisplayOrder(ctx, id, order); err != nil {
			s.logger.Warn("分类排序：单条更新失败", zap.Uint64("categoryID", id), zap.Int("order", order), zap.Error(err))
			result.Fail(id, err)
			continue
		}
		result.Ok(id)
	}
	return result, nil
}
