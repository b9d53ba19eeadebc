package seo

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/shopspring/decimal"
)

// BuildURL 拼接站点地址与路径片段，片段会做路径转义。
func BuildURL(base string, parts ...string) string {
	u := strings.TrimRight(base, "/")
	for _, p := range parts {
		if p == "" {
			continue
		}
		u += "/" + url.PathEscape(p)
	}
	if u == "" {
		return "/"
	}
	return u
}

var priceNumber = regexp.MustCompile(`\d[\d.,]*`)

// ParsePrice 从自由文本价格中提取第一个金额与币种。
// - 同时出现 "," 与 "." 时，靠后的一个视为小数点。
// - 只有一种分隔符时，后面恰好跟 3 位数字视为千分位，否则视为小数点。
// - 没有数字（如 "Fiyat için iletişime geçin"）时返回 ok=false。
func ParsePrice(s, defaultCurrency string) (amount decimal.Decimal, currency string, ok bool) {
	raw := priceNumber.FindString(s)
	if raw == "" {
		return decimal.Zero, "", false
	}
	raw = strings.TrimRight(raw, ".,")

	lastComma := strings.LastIndex(raw, ",")
	lastDot := strings.LastIndex(raw, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)
		} else {
			raw = strings.ReplaceAll(raw, ",", "")
		}
	case lastComma >= 0:
		raw = normalizeSingleSeparator(raw, ",")
	case lastDot >= 0:
		raw = normalizeSingleSeparator(raw, ".")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, "", false
	}
	return d, detectCurrency(s, defaultCurrency), true
}

func normalizeSingleSeparator(raw, sep string) string {
	parts := strings.Split(raw, sep)
	if len(parts) > 2 || len(parts[len(parts)-1]) == 3 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, ".")
}

func detectCurrency(s, fallback string) string {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(s, "$") || strings.Contains(upper, "USD"):
		return "USD"
	case strings.Contains(s, "€") || strings.Contains(upper, "EUR"):
		return "EUR"
	case strings.Contains(s, "₺") || strings.Contains(upper, "TRY") || strings.Contains(upper, " TL"):
		return "TRY"
	case strings.Contains(s, "£") || strings.Contains(upper, "GBP"):
		return "GBP"
	}
	return fallback
}

// ProductJSONLD 生成 schema.org Product 结构化数据。价格无法解析时不输出 offers。
func ProductJSONLD(p *entities.Product, site config.SiteInfo) string {
	if p == nil {
		return "{}"
	}
	productURL := BuildURL(site.BaseURL, "products", p.Slug)
	meta := p.SEO.Data()

	description := meta.MetaDescription
	if description == "" {
		description = truncateWords(StripHTML(p.Description), 50)
	}

	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Name,
		"description": description,
		"url":         productURL,
	}
	if p.Manufacturer != "" {
		data["brand"] = map[string]string{
			"@type": "Brand",
			"name":  p.Manufacturer,
		}
		data["manufacturer"] = map[string]string{
			"@type": "Organization",
			"name":  p.Manufacturer,
		}
	}
	if len(p.Images) > 0 {
		images := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			images = append(images, img.URL)
		}
		data["image"] = images
	}
	if len(p.TechnicalSpecs) > 0 {
		props := make([]map[string]string, 0, len(p.TechnicalSpecs))
		for _, spec := range p.TechnicalSpecs {
			props = append(props, map[string]string{
				"@type": "PropertyValue",
				"name":  spec.Name,
				"value": spec.Value,
			})
		}
		data["additionalProperty"] = props
	}
	if amount, currency, ok := ParsePrice(p.Price, site.Currency); ok && currency != "" {
		data["offers"] = map[string]interface{}{
			"@type":         "Offer",
			"price":         amount.StringFixed(2),
			"priceCurrency": currency,
			"availability":  "https://schema.org/InStock",
			"url":           productURL,
		}
	}
	if len(meta.Keywords) > 0 {
		data["keywords"] = strings.Join(meta.Keywords, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJSONLD 生成 schema.org BlogPosting 结构化数据。
func BlogPostingJSONLD(post *entities.BlogPost, site config.SiteInfo) string {
	if post == nil {
		return "{}"
	}
	postURL := BuildURL(site.BaseURL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Excerpt,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.PublishedAt != nil {
		data["datePublished"] = post.PublishedAt.Format(time.RFC3339)
	}
	if !post.UpdatedAt.IsZero() {
		data["dateModified"] = post.UpdatedAt.Format(time.RFC3339)
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	if post.AuthorName != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.AuthorName,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func truncateWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:n], " ") + "…"
}
