package models

import "time"

// MaxTagsPerNote 单条笔记标签上限
const MaxTagsPerNote = 10

// Note 笔记主表。置顶与归档互斥，保存时归档优先。
type Note struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(200)" json:"title"`
	Content    string    `gorm:"type:text" json:"content"` // 保存前统一去除标记
	CategoryID *int64    `gorm:"index" json:"category_id,omitempty"`
	UserID     int64     `gorm:"index" json:"user_id"`
	IsPinned   bool      `gorm:"default:false" json:"is_pinned"`
	IsArchived bool      `gorm:"default:false" json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags     []*Tag    `gorm:"many2many:note_tags" json:"tags,omitempty"`
}

func (n *Note) OwnerID() int64 {
	return n.UserID
}
