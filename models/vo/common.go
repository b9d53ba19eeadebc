package vo

// PageVO 页码分页的通用响应结构
type PageVO[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPageVO 构造分页响应，Items 为 nil 时替换为空切片，保证序列化为 []。
func NewPageVO[T any](items []T, total int64, page, pageSize int) PageVO[T] {
	if items == nil {
		items = []T{}
	}
	return PageVO[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}

// BulkFailure 批量操作中失败的单条记录
type BulkFailure struct {
	ID    uint64 `json:"id"`
	Error string `json:"error"`
}

// BulkResult 批量操作结果。
// - 批量操作逐条执行，不在同一事务内；成功的行已生效，失败的行记录在 Failed 中。
type BulkResult struct {
	Succeeded []uint64      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// NewBulkResult 返回字段均为非 nil 的空结果。
func NewBulkResult() *BulkResult {
	return &BulkResult{Succeeded: []uint64{}, Failed: []BulkFailure{}}
}

// Fail 记录一条失败。
func (r *BulkResult) Fail(id uint64, err error) {
	r.Failed = append(r.Failed, BulkFailure{ID: id, Error: err.Error()})
}

// Ok 记录一条成功。
func (r *BulkResult) Ok(id uint64) {
	r.Succeeded = append(r.Succeeded, id)
}

// PromptVO AI 提示词，供后台复制到外部工具使用
type PromptVO struct {
	Prompt string `json:"prompt"`
}

// LinkVO 单个外链
type LinkVO struct {
	URL string `json:"url"`
}

// HTMLVO 内容块转换结果
type HTMLVO struct {
	HTML string `json:"html"`
}

// ImportResultVO JSON 导入结果
type ImportResultVO struct {
	Imported int `json:"imported"`
}
