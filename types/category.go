package types

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryStat 分类及其笔记数
type CategoryStat struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NotesCount int64  `json:"notes_count"`
}
