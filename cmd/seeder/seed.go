package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/service"
)

// topicPool 产品相关话题，刻意包含近似写法以便聚类出内容机会
var topicPool = []string{
	"industrial valves", "industrial valve",
	"stainless steel pipes", "stainless steel pipe",
	"pipe fittings", "pipe fitting sizes",
	"flange standards", "flange standard",
	"pressure ratings", "export packaging",
}

var categoryPool = []string{"Valves", "Pipes", "Fittings", "Flanges", "Pumps", "Gaskets", "Hoses", "Instruments"}

// SeedOptions 各类数据的生成数量
type SeedOptions struct {
	Categories int
	Products   int
	Posts      int
	Messages   int
	Seed       int64
}

func (o SeedOptions) validate() error {
	if o.Categories < 0 || o.Products < 0 || o.Posts < 0 || o.Messages < 0 {
		return errors.New("数量不能为负")
	}
	if o.Categories > len(categoryPool) {
		return fmt.Errorf("最多生成 %d 个分类", len(categoryPool))
	}
	return nil
}

// SeedReport 实际写入的记录数
type SeedReport struct {
	Categories    int
	Products      int
	Posts         int
	Messages      int
	Opportunities int
}

// Seeder 通过服务层写入测试数据，slug、JSON-LD 与事件都按正常流程生成。
type Seeder struct {
	categories    service.CategoryService
	products      service.ProductService
	blog          service.BlogService
	messages      service.MessageService
	opportunities service.ContentOpportunityService
	logger        *zap.Logger
}

func (s *Seeder) Run(ctx context.Context, opts SeedOptions) (*SeedReport, error) {
	faker := gofakeit.New(opts.Seed)
	report := &SeedReport{}

	categoryIDs := make([]uint64, 0, opts.Categories)
	for i := 0; i < opts.Categories; i++ {
		cat, err := s.categories.Create(ctx, &dto.CategoryRequest{
			Name:        categoryPool[i],
			Slug:        strings.ToLower(categoryPool[i]),
			Description: faker.Sentence(12),
		})
		if err != nil {
			// 固定 slug，重复运行时返回 ErrSlugTaken
			s.logger.Warn("创建分类失败，跳过", zap.String("name", categoryPool[i]), zap.Error(err))
			continue
		}
		categoryIDs = append(categoryIDs, cat.ID)
		report.Categories++
	}

	productIDs := make([]uint64, 0, opts.Products)
	for i := 0; i < opts.Products; i++ {
		req := fakeProduct(faker, categoryIDs)
		p, err := s.products.Create(ctx, req)
		if err != nil {
			s.logger.Error("创建产品失败", zap.String("name", req.Name), zap.Error(err))
			continue
		}
		productIDs = append(productIDs, p.ID)
		report.Products++
	}

	for i := 0; i < opts.Posts; i++ {
		req, err := fakePost(faker, productIDs)
		if err != nil {
			return report, err
		}
		if _, err := s.blog.Create(ctx, req); err != nil {
			s.logger.Error("创建文章失败", zap.String("title", req.Title), zap.Error(err))
			continue
		}
		report.Posts++
	}

	for i := 0; i < opts.Messages; i++ {
		req := fakeContact(faker, productIDs)
		if _, err := s.messages.Submit(ctx, req, faker.IPv4Address()); err != nil {
			s.logger.Error("创建询盘失败", zap.String("email", req.Email), zap.Error(err))
			continue
		}
		report.Messages++
	}

	result, err := s.opportunities.Regenerate(ctx)
	if err != nil {
		return report, fmt.Errorf("生成内容机会失败: %w", err)
	}
	report.Opportunities = result.Created + result.Updated
	return report, nil
}

func fakeProduct(faker *gofakeit.Faker, categoryIDs []uint64) *dto.ProductRequest {
	name := faker.ProductName()
	req := &dto.ProductRequest{
		Name:         name,
		Manufacturer: faker.Company(),
		Price:        fmt.Sprintf("%.2f", faker.Price(5, 2500)),
		Description:  faker.Paragraph(2, 4, 18, "\n\n"),
		TechnicalSpecs: []entities.TechnicalSpec{
			{Name: "Material", Value: faker.RandomString([]string{"Stainless Steel 304", "Stainless Steel 316", "Carbon Steel", "Brass", "Ductile Iron"})},
			{Name: "Weight", Value: fmt.Sprintf("%d kg", faker.Number(1, 80))},
		},
		Images: []entities.ProductImage{
			{URL: faker.ImageURL(800, 600), Alt: name},
		},
		SEO: entities.ProductSEO{
			MetaTitle:       name,
			MetaDescription: faker.Sentence(20),
			FocusKeyword:    strings.ToLower(strings.Fields(name)[0]),
			RelatedTopics:   pickTopics(faker, 2),
		},
		Status:   entities.ProductStatusActive,
		Featured: faker.Number(1, 5) == 1,
	}
	if faker.Number(1, 10) == 1 {
		req.Status = entities.ProductStatusDraft
	}
	if len(categoryIDs) > 0 {
		id := categoryIDs[faker.Number(0, len(categoryIDs)-1)]
		req.CategoryID = &id
	}
	return req
}

func fakePost(faker *gofakeit.Faker, productIDs []uint64) (*dto.BlogPostRequest, error) {
	topic := topicPool[faker.Number(0, len(topicPool)-1)]
	blocks := []content.Block{
		{Type: content.BlockParagraph, Content: faker.Paragraph(1, 3, 15, " ")},
		{Type: content.BlockHeading, Level: 2, Content: "Choosing " + topic},
		{Type: content.BlockList, Items: []string{faker.Sentence(6), faker.Sentence(6), faker.Sentence(6)}},
		{Type: content.BlockFAQ, Question: "What is the lead time?", Answer: faker.Sentence(10)},
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("序列化内容块失败: %w", err)
	}

	req := &dto.BlogPostRequest{
		Title:      strings.TrimSuffix(faker.Sentence(6), ".") + " " + topic,
		Excerpt:    faker.Sentence(18),
		Blocks:     raw,
		AuthorName: faker.Name(),
		Category:   faker.RandomString([]string{"Guides", "News", "Case Studies"}),
		Tags:       []string{topic, faker.Word()},
		Image:      faker.ImageURL(1200, 630),
		Status:     entities.PostStatusPublished,
	}
	if faker.Number(1, 4) == 1 {
		req.Status = entities.PostStatusDraft
	}
	for i := 0; i < 2 && len(productIDs) > 0; i++ {
		req.RelatedProductIDs = append(req.RelatedProductIDs, productIDs[faker.Number(0, len(productIDs)-1)])
	}
	return req, nil
}

func fakeContact(faker *gofakeit.Faker, productIDs []uint64) *dto.ContactRequest {
	req := &dto.ContactRequest{
		Name:    faker.Name(),
		Email:   faker.Email(),
		Phone:   faker.Phone(),
		Company: faker.Company(),
		Country: faker.Country(),
		Subject: "Quote request",
		Message: faker.Paragraph(1, 3, 12, " "),
	}
	if len(productIDs) > 0 && faker.Bool() {
		id := productIDs[faker.Number(0, len(productIDs)-1)]
		req.ProductID = &id
	}
	return req
}

func pickTopics(faker *gofakeit.Faker, n int) []string {
	seen := make(map[string]bool, n)
	topics := make([]string, 0, n)
	for len(topics) < n {
		t := topicPool[faker.Number(0, len(topicPool)-1)]
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	return topics
}
