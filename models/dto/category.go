package dto

// CategoryRequest 新建/更新分类
type CategoryRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	Slug         string `json:"slug" binding:"omitempty,max=160"`
	Description  string `json:"description"`
	Image        string `json:"image" binding:"omitempty,max=1023"`
	DisplayOrder *int   `json:"display_order"`
}

// ReorderCategoriesRequest 拖拽排序后的分类顺序，IDs 按新的展示顺序排列。
type ReorderCategoriesRequest struct {
	IDs []uint64 `json:"ids" binding:"required,min=1"`
}
