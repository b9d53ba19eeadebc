package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"gorm.io/datatypes"
)

// Product 产品实体
// - 表名: products
// - 技术参数、附加信息、图片、视频与 SEO 元数据以 JSON 列存储，结构由后台表单决定。
type Product struct {
	entities.BaseModel

	Name         string  `gorm:"type:varchar(255);not null"`
	Slug         string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	CategoryID   *uint64 `gorm:"index"` // 可为空：分类被删除后产品保留
	Manufacturer string  `gorm:"type:varchar(255)"`

	// 价格为自由文本，例如 "$1,250 / ton" 或 "Fiyat için iletişime geçin"
	Price string `gorm:"type:varchar(120)"`

	// 富文本描述（HTML 或 Markdown）
	Description string `gorm:"type:longtext"`

	TechnicalSpecs datatypes.JSONSlice[TechnicalSpec]  `gorm:"type:json"`
	AdditionalInfo datatypes.JSONSlice[AdditionalInfo] `gorm:"type:json"`
	Images         datatypes.JSONSlice[ProductImage]   `gorm:"type:json"`
	Videos         datatypes.JSONSlice[string]         `gorm:"type:json"`
	SEO            datatypes.JSONType[ProductSEO]      `gorm:"type:json"`

	// StructuredData JSON-LD 文本，为空时在保存时自动生成
	StructuredData string `gorm:"type:text"`

	ViewCount int64         `gorm:"default:0"`
	Status    ProductStatus `gorm:"type:varchar(20);default:'draft';index"`
	Featured  bool          `gorm:"default:false;index"`
}

// TechnicalSpec 技术参数条目
type TechnicalSpec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AdditionalInfo 附加信息条目（常见问题式的标题/内容对）
type AdditionalInfo struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProductImage 产品图片
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProductSEO 产品 SEO 元数据
type ProductSEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	FocusKeyword    string   `json:"focusKeyword,omitempty"`
	RelatedTopics   []string `json:"relatedTopics,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty"`
}
