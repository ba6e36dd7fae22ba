package types

import "notely/models"

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
)

// 排序方式
const (
	SortUpdatedDesc = "updated_desc"
	SortUpdatedAsc  = "updated_asc"
	SortCreatedDesc = "created_desc"
	SortCreatedAsc  = "created_asc"
	SortTitleAsc    = "title_asc"
	SortTitleDesc   = "title_desc"
	SortDefault     = "default" // 置顶优先，再按更新时间
)

// 检索范围
const (
	SearchInBoth    = "both"
	SearchInTitle   = "title"
	SearchInContent = "content"
)

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	CategoryID *int64  `json:"category_id"`
	TagIDs     []int64 `json:"tag_ids"`
	IsPinned   bool    `json:"is_pinned"`
	IsArchived bool    `json:"is_archived"`
}

// UpdateNoteRequest 更新笔记请求，整体替换
type UpdateNoteRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	CategoryID *int64  `json:"category_id"`
	TagIDs     []int64 `json:"tag_ids"`
	IsPinned   bool    `json:"is_pinned"`
	IsArchived bool    `json:"is_archived"`
}

// SearchNotesRequest 笔记检索请求
type SearchNotesRequest struct {
	Query           string  `form:"query"`
	SearchIn        string  `form:"search_in" binding:"omitempty,oneof=both title content"`
	ExactMatch      bool    `form:"exact_match"`
	CategoryID      int64   `form:"category"`
	TagIDs          []int64 `form:"tags"`
	IncludeArchived bool    `form:"include_archived"`
	DateFrom        string  `form:"date_from"` // 2006-01-02
	DateTo          string  `form:"date_to"`
	IncludeShared   bool    `form:"include_shared"`
	SortBy          string  `form:"sort_by" binding:"omitempty,oneof=updated_desc updated_asc created_desc created_asc title_asc title_desc default"`
	Page            int     `form:"page" binding:"omitempty,min=1"`
	PageSize        int     `form:"pagesize" binding:"omitempty,min=1,max=100"`
}

// ListNotesResponse 笔记列表响应
type ListNotesResponse struct {
	Notes []*models.Note `json:"notes"`
	Total int64          `json:"total"`
}

// CreateNoteResponse 创建笔记响应
type CreateNoteResponse struct {
	NoteID int64 `json:"note_id"`
}
