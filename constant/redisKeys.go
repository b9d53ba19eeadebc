package constant

import "time"

// ViewKind 浏览计数所针对的实体类型，参与 Key 的拼接。
type ViewKind string

const (
	ViewKindProduct ViewKind = "product"
	ViewKindBlog    ViewKind = "blog"
)

// Redis Key 前缀
const (
	// ViewCountPrefix 浏览量计数器前缀。
	// 示例 Key: "view_count:product:12"
	// Redis 类型: String
	ViewCountPrefix = "view_count:"

	// ViewDedupePrefix 访客去重标记前缀，同一访客在 ViewDedupeTTL 内只计一次。
	// 示例 Key: "view_dedupe:blog:7:3f2a..."
	// Redis 类型: String (SET NX EX)
	ViewDedupePrefix = "view_dedupe:"

	// RankPrefix 全量浏览排行 ZSet 前缀，成员为实体 ID，分数为浏览量。
	// 示例 Key: "view_rank:product"
	RankPrefix = "view_rank:"
)

// PopularProductsKey 热门产品快照 ZSet，由定时任务从全量排行截取 Top N。
const PopularProductsKey = "popular_products"

// ViewDedupeTTL 访客去重窗口。
const ViewDedupeTTL = 12 * time.Hour

// ProductDetailCachePrefix 前台产品详情缓存前缀，按 slug 存储 ProductVO 的 JSON。
// 示例 Key: "product_detail:steel-pipe"
// Redis 类型: String
const ProductDetailCachePrefix = "product_detail:"

// ProductDetailCacheTTL 产品详情缓存有效期；后台修改产品时主动失效。
const ProductDetailCacheTTL = 30 * time.Minute
