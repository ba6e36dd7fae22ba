package types

// UploadAttachmentResponse 附件上传响应
type UploadAttachmentResponse struct {
	AttachmentID int64  `json:"attachment_id"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	FileType     string `json:"file_type"`
}
