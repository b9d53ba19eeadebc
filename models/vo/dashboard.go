package vo

// DashboardVO 后台首页统计
type DashboardVO struct {
	ProductsByStatus  map[string]int64    `json:"products_by_status"`
	PublishedPosts    int64               `json:"published_posts"`
	MessagesByStatus  map[string]int64    `json:"messages_by_status"`
	UnreadMessages    int64               `json:"unread_messages"`
	OpenOpportunities int64               `json:"open_opportunities"`
	OpenSEOTasks      int64               `json:"open_seo_tasks"`
	TopProducts       []*ProductSummaryVO `json:"top_products"`
}
