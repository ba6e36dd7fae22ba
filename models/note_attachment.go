package models

import "time"

// NoteAttachment 附件元数据，文件内容存 OSS，随笔记级联删除
type NoteAttachment struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	NoteID     int64     `gorm:"index" json:"note_id"`
	ObjectKey  string    `gorm:"type:varchar(512)" json:"object_key"`
	FileName   string    `gorm:"type:varchar(255)" json:"file_name"`
	FileSize   int64     `json:"file_size"` // 字节
	FileType   string    `gorm:"type:varchar(100)" json:"file_type"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	Note *Note `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
