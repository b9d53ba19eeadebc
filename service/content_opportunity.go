package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
	"github.com/Xushengqwer/trade_site/seo"
)

// ContentOpportunityService 由产品相关话题聚类得到的选题清单。
type ContentOpportunityService interface {
	// Regenerate 重新聚类全部产品的相关话题并同步到数据库。
	// - 每个聚类对应一个内容机会，话题取聚类第一个成员。
	// - 已不存在的聚类只删除状态为 open 的机会，已规划/已覆盖的保留。
	// - 标题或标签包含任一关键词的已发布文章会被自动关联。
	Regenerate(ctx context.Context) (*vo.RegenerateResultVO, error)
	List(ctx context.Context, status *entities.OpportunityStatus) ([]*vo.ContentOpportunityVO, error)
	UpdateStatus(ctx context.Context, id uint64, status entities.OpportunityStatus) error
	LinkPost(ctx context.Context, id, postID uint64) error
	UnlinkPost(ctx context.Context, id, postID uint64) error
	Delete(ctx context.Context, id uint64) error
	// Prompt 生成围绕该话题写作博客文章的 AI 提示词，未找到时返回 (nil, nil)。
	Prompt(ctx context.Context, id uint64) (*vo.PromptVO, error)
}

type contentOpportunityService struct {
	opportunityRepo mysql.ContentOpportunityRepository
	productRepo     mysql.ProductRepository
	postRepo        mysql.BlogPostRepository
	logger          *zap.Logger
}

func NewContentOpportunityService(
	opportunityRepo mysql.ContentOpportunityRepository,
	productRepo mysql.ProductRepository,
	postRepo mysql.BlogPostRepository,
	logger *zap.Logger,
) ContentOpportunityService {
	return &contentOpportunityService{
		opportunityRepo: opportunityRepo,
		productRepo:     productRepo,
		postRepo:        postRepo,
		logger:          logger,
	}
}

// TopicCluster 一个话题聚类及其来源产品数
type TopicCluster struct {
	Members      []string
	ProductCount int
}

// BuildTopicClusters 收集产品的相关话题（忽略大小写去重，保持首次出现顺序）并聚类。
// ProductCount 为至少贡献了一个成员话题的产品数。
func BuildTopicClusters(products []*entities.Product, threshold float64) []TopicCluster {
	var order []string
	sources := make(map[string]map[uint64]bool)
	for _, p := range products {
		for _, t := range p.SEO.Data().RelatedTopics {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			key := strings.ToLower(t)
			if sources[key] == nil {
				sources[key] = make(map[uint64]bool)
				order = append(order, t)
			}
			sources[key][p.ID] = true
		}
	}

	groups := seo.ClusterTopics(order, threshold)
	clusters := make([]TopicCluster, 0, len(groups))
	for _, g := range groups {
		contributors := make(map[uint64]bool)
		for _, m := range g {
			for id := range sources[strings.ToLower(m)] {
				contributors[id] = true
			}
		}
		clusters = append(clusters, TopicCluster{Members: g, ProductCount: len(contributors)})
	}
	return clusters
}

// MatchPosts 返回标题或任一标签包含某个关键词（忽略大小写）的文章 ID。
func MatchPosts(keywords []string, posts []*entities.BlogPost) []uint64 {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	var ids []uint64
	for _, post := range posts {
		haystack := []string{strings.ToLower(post.Title)}
		for _, tag := range post.Tags {
			haystack = append(haystack, strings.ToLower(tag))
		}
	match:
		for _, k := range lowered {
			for _, h := range haystack {
				if strings.Contains(h, k) {
					ids = append(ids, post.ID)
					break match
				}
			}
		}
	}
	return ids
}

func (s *contentOpportunityService) Regenerate(ctx context.Context) (*vo.RegenerateResultVO, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}
	existing, err := s.opportunityRepo.ListAllPlain(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询现有内容机会失败: %w", err)
	}
	posts, err := s.postRepo.ListPublished(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("查询已发布文章失败: %w", err)
	}

	clusters := BuildTopicClusters(products, constant.TopicSimilarityThreshold)
	result := &vo.RegenerateResultVO{Clusters: len(clusters)}

	byTopic := make(map[string]*entities.ContentOpportunity, len(existing))
	for _, o := range existing {
		byTopic[strings.ToLower(o.Topic)] = o
	}
	kept := make(map[uint64]bool)

	for _, c := range clusters {
		// 任一成员与已有话题相同即视为同一个机会，保留其状态与关联
		var match *entities.ContentOpportunity
		for _, m := range c.Members {
			if o, ok := byTopic[strings.ToLower(m)]; ok && !kept[o.ID] {
				match = o
				break
			}
		}

		var id uint64
		if match != nil {
			updates := map[string]interface{}{
				"keywords":      datatypes.JSONSlice[string](c.Members),
				"product_count": c.ProductCount,
			}
			if err := s.opportunityRepo.Update(ctx, match.ID, updates); err != nil {
				return result, fmt.Errorf("更新内容机会(ID: %d)失败: %w", match.ID, err)
			}
			id = match.ID
			result.Updated++
		} else {
			o := &entities.ContentOpportunity{
				Topic:        c.Members[0],
				Keywords:     datatypes.JSONSlice[string](c.Members),
				ProductCount: c.ProductCount,
				Status:       entities.OpportunityStatusOpen,
			}
			if err := s.opportunityRepo.Create(ctx, o); err != nil {
				return result, fmt.Errorf("创建内容机会 %q 失败: %w", o.Topic, err)
			}
			id = o.ID
			result.Created++
		}
		kept[id] = true

		if postIDs := MatchPosts(c.Members, posts); len(postIDs) > 0 {
			if err := s.opportunityRepo.LinkPosts(ctx, id, postIDs); err != nil {
				s.logger.Warn("自动关联文章失败", zap.Uint64("opportunityID", id), zap.Error(err))
			}
		}
	}

	for _, o := range existing {
		if kept[o.ID] || o.Status != entities.OpportunityStatusOpen {
			continue
		}
		if err := s.opportunityRepo.Delete(ctx, o.ID); err != nil {
			s.logger.Warn("删除过期内容机会失败", zap.Uint64("opportunityID", o.ID), zap.Error(err))
			continue
		}
		result.Removed++
	}

	s.logger.Info("内容机会已重新生成",
		zap.Int("clusters", result.Clusters),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("removed", result.Removed),
	)
	return result, nil
}

func (s *contentOpportunityService) List(ctx context.Context, status *entities.OpportunityStatus) ([]*vo.ContentOpportunityVO, error) {
	list, err := s.opportunityRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("查询内容机会失败: %w", err)
	}
	return vo.NewContentOpportunityVOs(list), nil
}

func (s *contentOpportunityService) UpdateStatus(ctx context.Context, id uint64, status entities.OpportunityStatus) error {
	if !status.Valid() {
		return fmt.Errorf("内容机会状态 %q: %w", status, myErrors.ErrInvalidStatus)
	}
	if err := s.opportunityRepo.Update(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return fmt.Errorf("更新内容机会(ID: %d)状态失败: %w", id, err)
	}
	return nil
}

func (s *contentOpportunityService) LinkPost(ctx context.Context, id, postID uint64) error {
	if err := s.opportunityRepo.LinkPosts(ctx, id, []uint64{postID}); err != nil {
		return fmt.Errorf("关联文章(ID: %d)失败: %w", postID, err)
	}
	return nil
}

func (s *contentOpportunityService) UnlinkPost(ctx context.Context, id, postID uint64) error {
	if err := s.opportunityRepo.UnlinkPost(ctx, id, postID); err != nil {
		return fmt.Errorf("取消关联文章(ID: %d)失败: %w", postID, err)
	}
	return nil
}

func (s *contentOpportunityService) Delete(ctx context.Context, id uint64) error {
	if err := s.opportunityRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除内容机会(ID: %d)失败: %w", id, err)
	}
	return nil
}

func (s *contentOpportunityService) Prompt(ctx context.Context, id uint64) (*vo.PromptVO, error) {
	o, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询内容机会(ID: %d)失败: %w", id, err)
	}
	if o == nil {
		return nil, nil
	}
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}
	keywords := make(map[string]bool, len(o.Keywords))
	for _, k := range o.Keywords {
		keywords[strings.ToLower(strings.TrimSpace(k))] = true
	}
	var related []*entities.Product
	for _, p := range products {
		for _, t := range p.SEO.Data().RelatedTopics {
			if keywords[strings.ToLower(strings.TrimSpace(t))] {
				related = append(related, p)
				break
			}
		}
	}
	return &vo.PromptVO{Prompt: content.BlogPostPrompt(o.Topic, o.Keywords, related)}, nil
}
