package seo

// 评分规则中的权重与阈值
const (
	weightMetaDescription = 20
	weightBacklinksMany   = 30
	weightBacklinksSome   = 20
	weightKeywordDensity  = 30
	weightViews           = 10
	weightImageAlt        = 10

	// BacklinksMany 达到该数量的反向链接拿满分
	BacklinksMany = 3
	// DensityMin / DensityMax 关键词密度的理想区间（百分比，闭区间）
	DensityMin = 1.5
	DensityMax = 2.5
	// ViewsThreshold 浏览量需严格大于该值
	ViewsThreshold = 100

	MaxScore = 100
)

// SignalSet 计算产品 SEO 得分所需的信号。
type SignalSet struct {
	HasMetaDescription bool
	// Backlinks 链接到该产品的博客文章数量
	Backlinks int
	// KeywordDensity 焦点关键词在描述中的密度（百分比）
	KeywordDensity float64
	Views          int64
	// ImageCount 与 ImagesWithAlt 用于判断是否所有图片都有 alt 文本
	ImageCount    int
	ImagesWithAlt int
}

// DensityInRange 关键词密度是否落在理想区间内。
func (s SignalSet) DensityInRange() bool {
	return s.KeywordDensity >= DensityMin && s.KeywordDensity <= DensityMax
}

// AllImagesHaveAlt 至少有一张图片且每张都有 alt 文本。
func (s SignalSet) AllImagesHaveAlt() bool {
	return s.ImageCount > 0 && s.ImagesWithAlt >= s.ImageCount
}

// Score 按固定权重计算 0-100 的 SEO 得分。
func Score(s SignalSet) int {
	score := 0
	if s.HasMetaDescription {
		score += weightMetaDescription
	}
	switch {
	case s.Backlinks >= BacklinksMany:
		score += weightBacklinksMany
	case s.Backlinks >= 1:
		score += weightBacklinksSome
	}
	if s.DensityInRange() {
		score += weightKeywordDensity
	}
	if s.Views > ViewsThreshold {
		score += weightViews
	}
	if s.AllImagesHaveAlt() {
		score += weightImageAlt
	}
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Recommendations 针对缺失的信号给出后台可执行的建议，按对得分的影响从大到小排列。
func Recommendations(s SignalSet) []string {
	recs := make([]string, 0, 5)
	switch {
	case s.Backlinks == 0:
		recs = append(recs, "Bu ürüne bağlantı veren en az bir blog yazısı yayınlayın.")
	case s.Backlinks < BacklinksMany:
		recs = append(recs, "Ürüne bağlantı veren blog yazısı sayısını en az 3'e çıkarın.")
	}
	if !s.DensityInRange() {
		if s.KeywordDensity < DensityMin {
			recs = append(recs, "Odak anahtar kelimeyi ürün açıklamasında daha sık kullanın (hedef %1.5 - %2.5).")
		} else {
			recs = append(recs, "Anahtar kelime yoğunluğunu azaltın (hedef %1.5 - %2.5).")
		}
	}
	if !s.HasMetaDescription {
		recs = append(recs, "Meta açıklaması ekleyin.")
	}
	if s.ImageCount == 0 {
		recs = append(recs, "Ürüne en az bir görsel ekleyin.")
	} else if !s.AllImagesHaveAlt() {
		recs = append(recs, "Tüm görsellere alternatif metin (alt) ekleyin.")
	}
	if s.Views <= ViewsThreshold {
		recs = append(recs, "Ürünü öne çıkararak veya sosyal medyada paylaşarak trafiği artırın.")
	}
	return recs
}
