package types

import "notely/models"

// DashboardResponse 用户首页统计
type DashboardResponse struct {
	NotesCount      int64           `json:"notes_count"`
	ActiveNotes     int64           `json:"active_notes"`
	ArchivedNotes   int64           `json:"archived_notes"`
	CategoriesCount int64           `json:"categories_count"`
	TagsCount       int64           `json:"tags_count"`
	SharedWithMe    int64           `json:"shared_with_me"`
	TopCategories   []*CategoryStat `json:"top_categories"`
	RecentNotes     []*models.Note  `json:"recent_notes"`
}

// AdminStatsResponse 管理端统计
type AdminStatsResponse struct {
	UserCount       int64           `json:"user_count"`
	NoteCount       int64           `json:"note_count"`
	AttachmentBytes int64           `json:"attachment_bytes"`
	TopUsers        []*UserNoteStat `json:"top_users"`
}

// UserNoteStat 按用户聚合的笔记数
type UserNoteStat struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	NotesCount int64  `json:"notes_count"`
}
