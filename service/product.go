package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	redisRepo "github.com/Xushengqwer/trade_site/repo/redis"
	"github.com/Xushengqwer/trade_site/seo"
)

// ProductService 产品目录的业务逻辑。
type ProductService interface {
	// List 分页查询；publicOnly 为 true 时只返回已上架产品（前台列表）。
	List(ctx context.Context, q *dto.ProductListQuery, publicOnly bool) (*vo.PageVO[*vo.ProductSummaryVO], error)
	// GetByID 后台查询，未找到返回 (nil, nil)。
	GetByID(ctx context.Context, id uint64) (*vo.ProductVO, error)
	// GetBySlug 前台详情页：只返回已上架产品，并记录一次浏览。未找到返回 (nil, nil)。
	GetBySlug(ctx context.Context, slug, visitor string) (*vo.ProductVO, error)
	Create(ctx context.Context, req *dto.ProductRequest) (*vo.ProductVO, error)
	Update(ctx context.Context, id uint64, req *dto.ProductUpdateRequest) (*vo.ProductVO, error)
	Delete(ctx context.Context, id uint64) error
	// BulkUpdateStatus / BulkDelete 逐条执行，部分失败不影响其他记录。
	BulkUpdateStatus(ctx context.Context, ids []uint64, status entities.ProductStatus) (*vo.BulkResult, error)
	BulkDelete(ctx context.Context, ids []uint64) (*vo.BulkResult, error)
	Featured(ctx context.Context, limit int) ([]*vo.ProductSummaryVO, error)
	// Related 同分类的其他产品；产品不存在时返回 (nil, nil)。
	Related(ctx context.Context, id uint64, limit int) ([]*vo.ProductSummaryVO, error)
	// Popular 优先读取 Redis 热门快照，快照为空或不可用时按数据库浏览量排序。
	Popular(ctx context.Context, limit int) ([]*vo.ProductSummaryVO, error)
	// Import 导入 JSON 数组；发现第一处违规即返回 *myErrors.ImportError，不写入任何数据。
	Import(ctx context.Context, raw []byte) (int, error)
	// Prompt 生成产品描述 (kind=description) 或 SEO 元数据 (kind=seo) 的 AI 提示词。
	Prompt(ctx context.Context, id uint64, kind string) (*vo.PromptVO, error)
	// InvalidateDetailCache 浏览量写回数据库后清除这些产品的详情缓存。
	// 缓存里的浏览量是写入时的快照，待回写增量清零后不清缓存会让显示的浏览量回退。
	InvalidateDetailCache(ctx context.Context, ids []uint64) error
}

type productService struct {
	productRepo  mysql.ProductRepository
	categoryRepo mysql.CategoryRepository
	views        ViewRecorder
	popular      redisRepo.PopularCache
	cache        redisRepo.ProductCache
	events       EventPublisher
	site         config.SiteInfo
	logger       *zap.Logger
}

func NewProductService(
	productRepo mysql.ProductRepository,
	categoryRepo mysql.CategoryRepository,
	views ViewRecorder,
	popular redisRepo.PopularCache,
	cache redisRepo.ProductCache,
	events EventPublisher,
	site config.SiteInfo,
	logger *zap.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		views:        views,
		popular:      popular,
		cache:        cache,
		events:       events,
		site:         site,
		logger:       logger,
	}
}

func (s *productService) List(ctx context.Context, q *dto.ProductListQuery, publicOnly bool) (*vo.PageVO[*vo.ProductSummaryVO], error) {
	q.Normalize()
	filter := mysql.ProductFilter{
		CategoryID: q.CategoryID,
		Status:     q.Status,
		Featured:   q.Featured,
		Search:     strings.TrimSpace(q.Search),
		Sort:       q.Sort,
		Offset:     q.GetOffset(),
		Limit:      q.PageSize,
	}
	if publicOnly {
		active := entities.ProductStatusActive
		filter.Status = &active
	}
	if q.CategorySlug != "" && q.CategoryID == nil {
		cat, err := s.categoryRepo.GetBySlug(ctx, q.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("查询分类失败: %w", err)
		}
		if cat == nil {
			page := vo.NewPageVO[*vo.ProductSummaryVO](nil, 0, q.Page, q.PageSize)
			return &page, nil
		}
		filter.CategoryID = &cat.ID
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询产品列表失败", zap.Any("query", q), zap.Error(err))
		return nil, fmt.Errorf("查询产品列表失败: %w", err)
	}
	page := vo.NewPageVO(vo.NewProductSummaryVOs(products), total, q.Page, q.PageSize)
	return &page, nil
}

func (s *productService) GetByID(ctx context.Context, id uint64) (*vo.ProductVO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	return vo.NewProductVO(p), nil
}

func (s *productService) GetBySlug(ctx context.Context, slug, visitor string) (*vo.ProductVO, error) {
	detail, err := s.cache.GetProductDetail(ctx, slug)
	if err != nil {
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取产品详情缓存出错，回源数据库", zap.String("slug", slug), zap.Error(err))
		}
		p, dbErr := s.productRepo.GetBySlug(ctx, slug)
		if dbErr != nil {
			return nil, fmt.Errorf("查询产品(slug: %s)失败: %w", slug, dbErr)
		}
		if p == nil || p.Status != entities.ProductStatusActive {
			return nil, nil
		}
		detail = vo.NewProductVO(p)
		if setErr := s.cache.SetProductDetail(ctx, detail); setErr != nil {
			s.logger.Warn("写入产品详情缓存失败", zap.String("slug", slug), zap.Error(setErr))
		}
	}
	detail.ViewCount += recordView(ctx, s.views, s.logger, constant.ViewKindProduct, detail.ID, visitor)
	return detail, nil
}

func (s *productService) Create(ctx context.Context, req *dto.ProductRequest) (*vo.ProductVO, error) {
	p, err := s.buildProduct(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("创建产品失败: %w", err)
	}
	s.logger.Info("产品已创建", zap.Uint64("productID", p.ID), zap.String("slug", p.Slug))
	s.publishChanged(events.ProductCreated, p)
	return vo.NewProductVO(p), nil
}

// buildProduct 校验请求并生成待写入的实体；taken 为导入时同批次已使用的 slug。
func (s *productService) buildProduct(ctx context.Context, req *dto.ProductRequest, taken map[string]bool) (*entities.Product, error) {
	status := req.Status
	if status == "" {
		status = entities.ProductStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("产品状态 %q: %w", status, myErrors.ErrInvalidStatus)
	}
	if req.CategoryID != nil {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	exists := s.productRepo.SlugExists
	if taken != nil {
		exists = func(ctx context.Context, slug string, excludeID uint64) (bool, error) {
			if taken[slug] {
				return true, nil
			}
			return s.productRepo.SlugExists(ctx, slug, excludeID)
		}
	}
	slug, err := resolveSlug(ctx, req.Slug, req.Name, "product", 0, exists)
	if err != nil {
		return nil, err
	}

	p := &entities.Product{
		Name:           strings.TrimSpace(req.Name),
		Slug:           slug,
		CategoryID:     req.CategoryID,
		Manufacturer:   strings.TrimSpace(req.Manufacturer),
		Price:          strings.TrimSpace(req.Price),
		Description:    req.Description,
		TechnicalSpecs: datatypes.JSONSlice[entities.TechnicalSpec](req.TechnicalSpecs),
		AdditionalInfo: datatypes.JSONSlice[entities.AdditionalInfo](req.AdditionalInfo),
		Images:         datatypes.JSONSlice[entities.ProductImage](req.Images),
		Videos:         datatypes.JSONSlice[string](req.Videos),
		SEO:            datatypes.NewJSONType(req.SEO),
		StructuredData: strings.TrimSpace(req.StructuredData),
		Status:         status,
		Featured:       req.Featured,
	}
	if p.StructuredData == "" {
		p.StructuredData = seo.ProductJSONLD(p, s.site)
	}
	return p, nil
}

func (s *productService) ensureCategory(ctx context.Context, categoryID uint64) error {
	cat, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("查询分类失败: %w", err)
	}
	if cat == nil {
		return fmt.Errorf("分类(ID: %d)不存在: %w", categoryID, commonerrors.ErrRepoNotFound)
	}
	return nil
}

func (s *productService) Update(ctx context.Context, id uint64, req *dto.ProductUpdateRequest) (*vo.ProductVO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("产品(ID: %d): %w", id, commonerrors.ErrRepoNotFound)
	}
	before := *p
	// 结构化数据与旧内容生成的结果一致，说明是自动生成的，修改后需要重新生成
	autoGenerated := p.StructuredData == "" || p.StructuredData == seo.ProductJSONLD(&before, s.site)

	updates := make(map[string]interface{})
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
		updates["name"] = p.Name
	}
	if req.Slug != nil && content.Slugify(*req.Slug) != p.Slug {
		slug, err := resolveSlug(ctx, *req.Slug, p.Name, "product", id, s.productRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
		updates["slug"] = slug
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			p.CategoryID = nil
		} else {
			if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
				return nil, err
			}
			p.CategoryID = req.CategoryID
		}
		updates["category_id"] = p.CategoryID
	}
	if req.Manufacturer != nil {
		p.Manufacturer = strings.TrimSpace(*req.Manufacturer)
		updates["manufacturer"] = p.Manufacturer
	}
	if req.Price != nil {
		p.Price = strings.TrimSpace(*req.Price)
		updates["price"] = p.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
		updates["description"] = p.Description
	}
	if req.TechnicalSpecs != nil {
		p.TechnicalSpecs = datatypes.JSONSlice[entities.TechnicalSpec](*req.TechnicalSpecs)
		updates["technical_specs"] = p.TechnicalSpecs
	}
	if req.AdditionalInfo != nil {
		p.AdditionalInfo = datatypes.JSONSlice[entities.AdditionalInfo](*req.AdditionalInfo)
		updates["additional_info"] = p.AdditionalInfo
	}
	if req.Images != nil {
		p.Images = datatypes.JSONSlice[entities.ProductImage](*req.Images)
		updates["images"] = p.Images
	}
	if req.Videos != nil {
		p.Videos = datatypes.JSONSlice[string](*req.Videos)
		updates["videos"] = p.Videos
	}
	if req.SEO != nil {
		p.SEO = datatypes.NewJSONType(*req.SEO)
		updates["seo"] = p.SEO
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("产品状态 %q: %w", *req.Status, myErrors.ErrInvalidStatus)
		}
		p.Status = *req.Status
		updates["status"] = p.Status
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
		updates["featured"] = p.Featured
	}
	if req.StructuredData != nil {
		p.StructuredData = strings.TrimSpace(*req.StructuredData)
		autoGenerated = p.StructuredData == ""
	}
	if autoGenerated {
		p.StructuredData = seo.ProductJSONLD(p, s.site)
	}
	if p.StructuredData != before.StructuredData {
		updates["structured_data"] = p.StructuredData
	}
	if len(updates) == 0 {
		return vo.NewProductVO(p), nil
	}

	if err := s.productRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("更新产品(ID: %d)失败: %w", id, err)
	}
	s.invalidate(ctx, before.Slug, p.Slug)
	s.logger.Info("产品已更新", zap.Uint64("productID", id), zap.Int("fields", len(updates)))
	s.publishChanged(events.ProductUpdated, p)
	return vo.NewProductVO(p), nil
}

func (s *productService) Delete(ctx context.Context, id uint64) error {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	if p == nil {
		return fmt.Errorf("产品(ID: %d): %w", id, commonerrors.ErrRepoNotFound)
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除产品(ID: %d)失败: %w", id, err)
	}
	s.invalidate(ctx, p.Slug)
	if err := s.popular.RemoveFromRank(ctx, constant.ViewKindProduct, id); err != nil {
		s.logger.Warn("从热门排行移除产品失败", zap.Uint64("productID", id), zap.Error(err))
	}
	s.logger.Info("产品已删除", zap.Uint64("productID", id))
	s.publishChanged(events.ProductDeleted, p)
	return nil
}

func (s *productService) BulkUpdateStatus(ctx context.Context, ids []uint64, status entities.ProductStatus) (*vo.BulkResult, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	if !status.Valid() {
		return nil, fmt.Errorf("产品状态 %q: %w", status, myErrors.ErrInvalidStatus)
	}
	result := vo.NewBulkResult()
	for _, id := range ids {
		_, err := s.Update(ctx, id, &dto.ProductUpdateRequest{Status: &status})
		if err != nil {
			s.logger.Warn("批量修改产品状态：单条失败", zap.Uint64("productID", id), zap.Error(err))
			result.Fail(id, err)
			continue
		}
		result.Ok(id)
	}
	return result, nil
}

func (s *productService) BulkDelete(ctx context.Context, ids []uint64) (*vo.BulkResult, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	result := vo.NewBulkResult()
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			s.logger.Warn("批量删除产品：单条失败", zap.Uint64("productID", id), zap.Error(err))
			result.Fail(id, err)
			continue
		}
		result.Ok(id)
	}
	return result, nil
}

func (s *productService) Featured(ctx context.Context, limit int) ([]*vo.ProductSummaryVO, error) {
	products, err := s.productRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("查询推荐产品失败: %w", err)
	}
	return vo.NewProductSummaryVOs(products), nil
}

func (s *productService) Related(ctx context.Context, id uint64, limit int) ([]*vo.ProductSummaryVO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	if p == nil {
		return nil, nil
	}
	if p.CategoryID == nil {
		return []*vo.ProductSummaryVO{}, nil
	}
	related, err := s.productRepo.ListRelated(ctx, *p.CategoryID, id, limit)
	if err != nil {
		return nil, fmt.Errorf("查询相关产品失败: %w", err)
	}
	return vo.NewProductSummaryVOs(related), nil
}

func (s *productService) Popular(ctx context.Context, limit int) ([]*vo.ProductSummaryVO, error) {
	ids, err := s.popular.GetPopularIDs(ctx, limit)
	if err != nil {
		s.logger.Warn("读取热门快照失败，改用数据库浏览量排序", zap.Error(err))
		ids = nil
	}
	if len(ids) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("查询热门产品失败: %w", err)
		}
		byID := make(map[uint64]*entities.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		ordered := make([]*entities.Product, 0, len(ids))
		for _, id := range ids {
			if p, ok := byID[id]; ok && p.Status == entities.ProductStatusActive {
				ordered = append(ordered, p)
			}
		}
		if len(ordered) > 0 {
			return vo.NewProductSummaryVOs(ordered), nil
		}
	}

	top, err := s.productRepo.TopViewed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("查询热门产品失败: %w", err)
	}
	return vo.NewProductSummaryVOs(top), nil
}

func (s *productService) Import(ctx context.Context, raw []byte) (int, error) {
	var items []dto.ProductRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, &myErrors.ImportError{Index: -1, Msg: "body must be a JSON array of products: " + err.Error()}
	}
	if len(items) == 0 {
		return 0, &myErrors.ImportError{Index: -1, Msg: "no products to import"}
	}

	taken := make(map[string]bool, len(items))
	products := make([]*entities.Product, 0, len(items))
	for i := range items {
		item := &items[i]
		if verr := validateImportItem(i, item); verr != nil {
			return 0, verr
		}
		p, err := s.buildProduct(ctx, item, taken)
		if err != nil {
			switch {
			case errors.Is(err, myErrors.ErrSlugTaken):
				return 0, &myErrors.ImportError{Index: i, Field: "slug", Msg: "slug already in use"}
			case errors.Is(err, commonerrors.ErrRepoNotFound):
				return 0, &myErrors.ImportError{Index: i, Field: "category_id", Msg: "category does not exist"}
			}
			return 0, err
		}
		taken[p.Slug] = true
		products = append(products, p)
	}

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return 0, fmt.Errorf("导入产品失败: %w", err)
	}
	s.logger.Info("产品导入完成", zap.Int("count", len(products)))
	for _, p := range products {
		s.publishChanged(events.ProductCreated, p)
	}
	return len(products), nil
}

// validateImportItem 导入数据的字段检查，返回第一处违规。
func validateImportItem(i int, item *dto.ProductRequest) *myErrors.ImportError {
	if strings.TrimSpace(item.Name) == "" {
		return &myErrors.ImportError{Index: i, Field: "name", Msg: "required"}
	}
	if len(item.Name) > 255 {
		return &myErrors.ImportError{Index: i, Field: "name", Msg: "longer than 255 characters"}
	}
	if len(item.Price) > 120 {
		return &myErrors.ImportError{Index: i, Field: "price", Msg: "longer than 120 characters"}
	}
	if item.Status != "" && !item.Status.Valid() {
		return &myErrors.ImportError{Index: i, Field: "status", Msg: fmt.Sprintf("unknown status %q", item.Status)}
	}
	for j, img := range item.Images {
		if strings.TrimSpace(img.URL) == "" {
			return &myErrors.ImportError{Index: i, Field: fmt.Sprintf("images[%d].url", j), Msg: "required"}
		}
	}
	for j, spec := range item.TechnicalSpecs {
		if strings.TrimSpace(spec.Name) == "" {
			return &myErrors.ImportError{Index: i, Field: fmt.Sprintf("technical_specs[%d].name", j), Msg: "required"}
		}
	}
	return nil
}

func (s *productService) Prompt(ctx context.Context, id uint64, kind string) (*vo.PromptVO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	if p == nil {
		return nil, nil
	}
	if kind == "seo" {
		return &vo.PromptVO{Prompt: content.SEOMetaPrompt(p)}, nil
	}
	var categoryName string
	if p.CategoryID != nil {
		if cat, err := s.categoryRepo.GetByID(ctx, *p.CategoryID); err == nil && cat != nil {
			categoryName = cat.Name
		}
	}
	return &vo.PromptVO{Prompt: content.ProductDescriptionPrompt(p, categoryName)}, nil
}

func (s *productService) InvalidateDetailCache(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("查询待清理缓存的产品失败: %w", err)
	}
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	if err := s.cache.Invalidate(ctx, slugs...); err != nil {
		return fmt.Errorf("清除产品详情缓存失败: %w", err)
	}
	return nil
}

func (s *productService) invalidate(ctx context.Context, slugs ...string) {
	if err := s.cache.Invalidate(ctx, slugs...); err != nil {
		s.logger.Warn("删除产品详情缓存失败", zap.Strings("slugs", slugs), zap.Error(err))
	}
}

func (s *productService) publishChanged(action events.ProductAction, p *entities.Product) {
	if s.events == nil {
		return
	}
	snapshot := *p
	publishAsync(s.logger, "product."+string(action), func(ctx context.Context) error {
		return s.events.SendProductChangedEvent(ctx, action, &snapshot)
	})
}
