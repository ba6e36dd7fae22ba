package types

// ShareNoteRequest 共享笔记请求，按用户名授权
type ShareNoteRequest struct {
	Username   string `json:"username" binding:"required"`
	Permission string `json:"permission" binding:"omitempty,oneof=read edit admin"`
}

// ShareNoteResponse 共享结果
type ShareNoteResponse struct {
	ShareID    int64  `json:"share_id"`
	Username   string `json:"username"`
	Permission string `json:"permission"`
}
