package vo

// --- 用于成功响应且包含具体 Data 的包装器，仅供 swagger 文档使用 ---

// ProductResponseWrapper 对应 response.APIResponse[vo.ProductVO]
type ProductResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ProductVO `json:"data"`
}

// ProductPageResponseWrapper 对应 response.APIResponse[vo.PageVO[*vo.ProductSummaryVO]]
type ProductPageResponseWrapper struct {
	Code    int                       `json:"code" example:"0"`
	Message string                    `json:"message,omitempty" example:"success"`
	Data    PageVO[*ProductSummaryVO] `json:"data"`
}

// ProductListResponseWrapper 对应 response.APIResponse[[]*vo.ProductSummaryVO]
type ProductListResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    []*ProductSummaryVO `json:"data"`
}

// CategoryListResponseWrapper 对应 response.APIResponse[[]*vo.CategoryVO]
type CategoryListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*CategoryVO `json:"data"`
}

// CategoryResponseWrapper 对应 response.APIResponse[vo.CategoryVO]
type CategoryResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    CategoryVO `json:"data"`
}

// BlogPostResponseWrapper 对应 response.APIResponse[vo.BlogPostVO]
type BlogPostResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    BlogPostVO `json:"data"`
}

// BlogPostDetailResponseWrapper 对应 response.APIResponse[vo.BlogPostDetailVO]
type BlogPostDetailResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    BlogPostDetailVO `json:"data"`
}

// BlogPostPageResponseWrapper 对应 response.APIResponse[vo.PageVO[*vo.BlogPostSummaryVO]]
type BlogPostPageResponseWrapper struct {
	Code    int                        `json:"code" example:"0"`
	Message string                     `json:"message,omitempty" example:"success"`
	Data    PageVO[*BlogPostSummaryVO] `json:"data"`
}

// MessageResponseWrapper 对应 response.APIResponse[vo.MessageVO]
type MessageResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    MessageVO `json:"data"`
}

// MessagePageResponseWrapper 对应 response.APIResponse[vo.PageVO[*vo.MessageVO]]
type MessagePageResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    PageVO[*MessageVO] `json:"data"`
}

// BulkResultResponseWrapper 对应 response.APIResponse[vo.BulkResult]
type BulkResultResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    BulkResult `json:"data"`
}

// SEOAnalysisResponseWrapper 对应 response.APIResponse[vo.ProductSEOAnalysisVO]
type SEOAnalysisResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    ProductSEOAnalysisVO `json:"data"`
}

// SEOOverviewResponseWrapper 对应 response.APIResponse[vo.SEOOverviewVO]
type SEOOverviewResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    SEOOverviewVO `json:"data"`
}

// ContentOpportunityListResponseWrapper 对应 response.APIResponse[[]*vo.ContentOpportunityVO]
type ContentOpportunityListResponseWrapper struct {
	Code    int                     `json:"code" example:"0"`
	Message string                  `json:"message,omitempty" example:"success"`
	Data    []*ContentOpportunityVO `json:"data"`
}

// DashboardResponseWrapper 对应 response.APIResponse[vo.DashboardVO]
type DashboardResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    DashboardVO `json:"data"`
}

// PromptResponseWrapper 对应 response.APIResponse[vo.PromptVO]
type PromptResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    PromptVO `json:"data"`
}

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况，或 DELETE 这类只返回 Code 和 Message 的成功操作。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}

// BlogPostListResponseWrapper 对应 response.APIResponse[[]*vo.BlogPostSummaryVO]
type BlogPostListResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    []*BlogPostSummaryVO `json:"data"`
}

// StringListResponseWrapper 对应 response.APIResponse[[]string]
type StringListResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    []string `json:"data"`
}

// LikesResponseWrapper 对应 response.APIResponse[vo.LikesVO]
type LikesResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    LikesVO `json:"data"`
}

// HTMLResponseWrapper 对应 response.APIResponse[vo.HTMLVO]
type HTMLResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    HTMLVO `json:"data"`
}

// ImportResponseWrapper 对应 response.APIResponse[vo.ImportResultVO]
type ImportResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    ImportResultVO `json:"data"`
}

// UnreadCountResponseWrapper 对应 response.APIResponse[vo.UnreadCountVO]
type UnreadCountResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    UnreadCountVO `json:"data"`
}

// LinkResponseWrapper 对应 response.APIResponse[vo.LinkVO]
type LinkResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    LinkVO `json:"data"`
}

// SEOTaskResponseWrapper 对应 response.APIResponse[vo.SEOTaskVO]
type SEOTaskResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    SEOTaskVO `json:"data"`
}

// SEOTaskListResponseWrapper 对应 response.APIResponse[[]*vo.SEOTaskVO]
type SEOTaskListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []*SEOTaskVO `json:"data"`
}

// RegenerateResponseWrapper 对应 response.APIResponse[vo.RegenerateResultVO]
type RegenerateResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    RegenerateResultVO `json:"data"`
}

// FeedPublishResponseWrapper 对应 response.APIResponse[[]string]，data 为已上传对象的 URL
type FeedPublishResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    []string `json:"data"`
}
