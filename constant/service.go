package constant

const (
	ServiceName    = "trade_site"
	ServiceVersion = "1.0.0"
)

// 定时任务 cron 表达式 (robfig/cron 默认分钟级精度)
const (
	SyncViewCountInterval   = "*/5 * * * *"  // 浏览量回写数据库
	PopularProductsCronSpec = "*/10 * * * *" // 热门产品快照
	FeedPublishCronSpec     = "0 * * * *"    // 站点地图/RSS 发布到对象存储
)

// 列表与分页默认值
const (
	DefaultPageSize     = 12
	MaxPageSize         = 100
	PopularProductsSize = 20
	RelatedProductsSize = 4
	RelatedPostsSize    = 3
	FeedItemsLimit      = 50
)

// COS 对象键
const (
	COSObjectKeySitemap = "sitemap.xml"
	COSObjectKeyRSS     = "rss.xml"
)
