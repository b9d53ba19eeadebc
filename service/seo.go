package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	"github.com/Xushengqwer/trade_site/seo"
)

// SEOService 产品 SEO 分析与待办管理。
type SEOService interface {
	// AnalyzeProduct 单个产品的得分与改进建议，产品不存在时返回 (nil, nil)。
	AnalyzeProduct(ctx context.Context, id uint64) (*vo.ProductSEOAnalysisVO, error)
	// Overview 全部产品按得分升序排列，并给出平均分。
	Overview(ctx context.Context) (*vo.SEOOverviewVO, error)

	ListTasks(ctx context.Context, q *dto.SEOTaskQuery) ([]*vo.SEOTaskVO, error)
	CreateTask(ctx context.Context, req *dto.SEOTaskRequest) (*vo.SEOTaskVO, error)
	UpdateTask(ctx context.Context, id uint64, req *dto.SEOTaskRequest) (*vo.SEOTaskVO, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type seoService struct {
	productRepo mysql.ProductRepository
	postRepo    mysql.BlogPostRepository
	taskRepo    mysql.SEOTaskRepository
	logger      *zap.Logger
}

func NewSEOService(productRepo mysql.ProductRepository, postRepo mysql.BlogPostRepository, taskRepo mysql.SEOTaskRepository, logger *zap.Logger) SEOService {
	return &seoService{productRepo: productRepo, postRepo: postRepo, taskRepo: taskRepo, logger: logger}
}

// backlinkSource 计算反向链接所需的文章数据，一次加载供多个产品复用。
type backlinkSource struct {
	linked map[uint64][]uint64
	posts  []*entities.BlogPost
	texts  map[uint64]string // 文章 ID -> 去标签后的小写正文
}

func (s *seoService) loadBacklinkSource(ctx context.Context) (*backlinkSource, error) {
	linked, err := s.postRepo.LinkedPostIDsByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询文章产品关联失败: %w", err)
	}
	posts, err := s.postRepo.ListPublished(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("查询已发布文章失败: %w", err)
	}
	texts := make(map[uint64]string, len(posts))
	for _, p := range posts {
		texts[p.ID] = strings.ToLower(seo.StripHTML(p.Content))
	}
	return &backlinkSource{linked: linked, posts: posts, texts: texts}, nil
}

// CountBacklinks 统计指向产品的文章数：推荐了该产品的文章，加上正文提到产品名称的文章（去重）。
func (b *backlinkSource) CountBacklinks(p *entities.Product) int {
	ids := make(map[uint64]bool)
	for _, id := range b.linked[p.ID] {
		ids[id] = true
	}
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name != "" {
		for _, post := range b.posts {
			if strings.Contains(b.texts[post.ID], name) {
				ids[post.ID] = true
			}
		}
	}
	return len(ids)
}

// AnalyzeProduct 根据产品数据与反向链接数生成分析结果。
func AnalyzeProduct(p *entities.Product, backlinks int) *vo.ProductSEOAnalysisVO {
	meta := p.SEO.Data()
	keyword := content.FocusKeyword(p)
	withAlt := 0
	for _, img := range p.Images {
		if strings.TrimSpace(img.Alt) != "" {
			withAlt++
		}
	}
	signals := seo.SignalSet{
		HasMetaDescription: strings.TrimSpace(meta.MetaDescription) != "",
		Backlinks:          backlinks,
		KeywordDensity:     seo.KeywordDensity(p.Description, keyword),
		Views:              p.ViewCount,
		ImageCount:         len(p.Images),
		ImagesWithAlt:      withAlt,
	}
	return &vo.ProductSEOAnalysisVO{
		ProductID:          p.ID,
		ProductName:        p.Name,
		Slug:               p.Slug,
		Score:              seo.Score(signals),
		HasMetaDescription: signals.HasMetaDescription,
		Backlinks:          backlinks,
		Keyword:            keyword,
		KeywordDensity:     math.Round(signals.KeywordDensity*100) / 100,
		Views:              p.ViewCount,
		ImageCount:         signals.ImageCount,
		ImagesWithAlt:      withAlt,
		Recommendations:    seo.Recommendations(signals),
	}
}

func (s *seoService) AnalyzeProduct(ctx context.Context, id uint64) (*vo.ProductSEOAnalysisVO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询产品(ID: %d)失败: %w", id, err)
	}
	if p == nil {
		return nil, nil
	}
	src, err := s.loadBacklinkSource(ctx)
	if err != nil {
		return nil, err
	}
	return AnalyzeProduct(p, src.CountBacklinks(p)), nil
}

func (s *seoService) Overview(ctx context.Context) (*vo.SEOOverviewVO, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}
	src, err := s.loadBacklinkSource(ctx)
	if err != nil {
		return nil, err
	}

	overview := &vo.SEOOverviewVO{Products: make([]*vo.ProductSEOAnalysisVO, 0, len(products))}
	total := 0
	for _, p := range products {
		a := AnalyzeProduct(p, src.CountBacklinks(p))
		total += a.Score
		overview.Products = append(overview.Products, a)
	}
	sort.SliceStable(overview.Products, func(i, j int) bool {
		return overview.Products[i].Score < overview.Products[j].Score
	})
	if len(products) > 0 {
		overview.AverageScore = math.Round(float64(total)/float64(len(products))*10) / 10
	}
	s.logger.Debug("SEO 概览已计算", zap.Int("products", len(products)), zap.Float64("average", overview.AverageScore))
	return overview, nil
}

func (s *seoService) ListTasks(ctx context.Context, q *dto.SEOTaskQuery) ([]*vo.SEOTaskVO, error) {
	tasks, err := s.taskRepo.List(ctx, q.ProductID, q.Status)
	if err != nil {
		return nil, fmt.Errorf("查询 SEO 任务失败: %w", err)
	}
	return vo.NewSEOTaskVOs(tasks), nil
}

func (s *seoService) validateTask(ctx context.Context, req *dto.SEOTaskRequest) error {
	if req.Priority != "" && !req.Priority.Valid() {
		return fmt.Errorf("任务优先级 %q: %w", req.Priority, myErrors.ErrInvalidStatus)
	}
	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("任务状态 %q: %w", req.Status, myErrors.ErrInvalidStatus)
	}
	p, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("查询产品(ID: %d)失败: %w", req.ProductID, err)
	}
	if p == nil {
		return fmt.Errorf("产品(ID: %d): %w", req.ProductID, commonerrors.ErrRepoNotFound)
	}
	return nil
}

func (s *seoService) CreateTask(ctx context.Context, req *dto.SEOTaskRequest) (*vo.SEOTaskVO, error) {
	if err := s.validateTask(ctx, req); err != nil {
		return nil, err
	}
	task := &entities.SEOTask{
		ProductID:   req.ProductID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
	if task.Priority == "" {
		task.Priority = entities.TaskPriorityMedium
	}
	if task.Status == "" {
		task.Status = entities.TaskStatusTodo
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("创建 SEO 任务失败: %w", err)
	}
	return vo.NewSEOTaskVO(task), nil
}

func (s *seoService) UpdateTask(ctx context.Context, id uint64, req *dto.SEOTaskRequest) (*vo.SEOTaskVO, error) {
	if err := s.validateTask(ctx, req); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"product_id":  req.ProductID,
		"title":       strings.TrimSpace(req.Title),
		"description": req.Description,
		"due_date":    req.DueDate,
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if err := s.taskRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("更新 SEO 任务(ID: %d)失败: %w", id, err)
	}
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询 SEO 任务(ID: %d)失败: %w", id, err)
	}
	return vo.NewSEOTaskVO(task), nil
}

func (s *seoService) DeleteTask(ctx context.Context, id uint64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除 SEO 任务(ID: %d)失败: %w", id, err)
	}
	return nil
}
