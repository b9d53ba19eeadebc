package content

import (
	"fmt"
	"strings"

	"github.com/Xushengqwer/trade_site/models/entities"
)

// 以下提示词供后台复制到外部 AI 工具使用，不直接调用任何模型接口。

// ProductDescriptionPrompt 生成产品描述撰写提示词。
func ProductDescriptionPrompt(p *entities.Product, categoryName string) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Write an SEO-optimized product description for a B2B export website.\n\n")
	fmt.Fprintf(&sb, "Product: %s\n", p.Name)
	if categoryName != "" {
		fmt.Fprintf(&sb, "Category: %s\n", categoryName)
	}
	if p.Manufacturer != "" {
		fmt.Fprintf(&sb, "Manufacturer: %s\n", p.Manufacturer)
	}
	if p.Price != "" {
		fmt.Fprintf(&sb, "Price: %s\n", p.Price)
	}
	if len(p.TechnicalSpecs) > 0 {
		sb.WriteString("Technical specifications:\n")
		for _, s := range p.TechnicalSpecs {
			fmt.Fprintf(&sb, "- %s: %s\n", s.Name, s.Value)
		}
	}
	meta := p.SEO.Data()
	if kw := focusKeyword(meta, p.Name); kw != "" {
		fmt.Fprintf(&sb, "Focus keyword: %s (keep density between 1.5%% and 2.5%%)\n", kw)
	}
	if len(meta.Keywords) > 0 {
		fmt.Fprintf(&sb, "Secondary keywords: %s\n", strings.Join(meta.Keywords, ", "))
	}
	sb.WriteString("\nRequirements:\n")
	sb.WriteString("- 300 to 500 words, written for international buyers and importers.\n")
	sb.WriteString("- Use <h2> and <p> HTML tags, include a short bullet list of key benefits.\n")
	sb.WriteString("- Mention export packaging, minimum order quantity and delivery terms in general terms.\n")
	sb.WriteString("- End with a call to action asking the buyer to request a quote.\n")
	return sb.String()
}

// BlogPostPrompt 根据内容机会生成博客文章撰写提示词，products 为需要自然链接的产品。
func BlogPostPrompt(topic string, keywords []string, products []*entities.Product) string {
	var sb strings.Builder
	sb.WriteString("Write an informative blog post for a B2B export company's website.\n\n")
	fmt.Fprintf(&sb, "Topic: %s\n", topic)
	if len(keywords) > 0 {
		fmt.Fprintf(&sb, "Keywords to cover: %s\n", strings.Join(keywords, ", "))
	}
	if len(products) > 0 {
		sb.WriteString("Link naturally to these products:\n")
		for _, p := range products {
			if p == nil {
				continue
			}
			fmt.Fprintf(&sb, "- %s (/products/%s)\n", p.Name, p.Slug)
		}
	}
	sb.WriteString("\nRequirements:\n")
	sb.WriteString("- 800 to 1200 words with <h2>/<h3> section headings.\n")
	sb.WriteString("- Include a FAQ section with 3 to 5 questions and answers.\n")
	sb.WriteString("- Provide a meta title (max 60 characters) and meta description (max 160 characters).\n")
	return sb.String()
}

// SEOMetaPrompt 生成产品 meta 标题与描述的提示词。
func SEOMetaPrompt(p *entities.Product) string {
	if p == nil {
		return ""
	}
	meta := p.SEO.Data()
	var sb strings.Builder
	sb.WriteString("Suggest SEO metadata for the following product page.\n\n")
	fmt.Fprintf(&sb, "Product: %s\n", p.Name)
	if kw := focusKeyword(meta, p.Name); kw != "" {
		fmt.Fprintf(&sb, "Focus keyword: %s\n", kw)
	}
	if meta.MetaTitle != "" {
		fmt.Fprintf(&sb, "Current meta title: %s\n", meta.MetaTitle)
	}
	if meta.MetaDescription != "" {
		fmt.Fprintf(&sb, "Current meta description: %s\n", meta.MetaDescription)
	}
	sb.WriteString("\nReturn:\n")
	sb.WriteString("- A meta title of at most 60 characters containing the focus keyword.\n")
	sb.WriteString("- A meta description of at most 160 characters with a call to action.\n")
	sb.WriteString("- 5 to 8 related topics buyers search for.\n")
	return sb.String()
}

// FocusKeyword 取 SEO 焦点关键词，依次回退到第一个关键词与产品名称。
func FocusKeyword(p *entities.Product) string {
	if p == nil {
		return ""
	}
	return focusKeyword(p.SEO.Data(), p.Name)
}

func focusKeyword(meta entities.ProductSEO, name string) string {
	if kw := strings.TrimSpace(meta.FocusKeyword); kw != "" {
		return kw
	}
	for _, kw := range meta.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			return kw
		}
	}
	return strings.TrimSpace(name)
}
