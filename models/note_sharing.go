package models

import "time"

// MaxSharesPerNote 单条笔记共享授权上限
const MaxSharesPerNote = 20

// NoteSharing 共享授权，(note, shared_with) 唯一，仅笔记归属者可增删
type NoteSharing struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	NoteID       int64     `gorm:"uniqueIndex:idx_sharing_note_user;index" json:"note_id"`
	SharedWithID int64     `gorm:"uniqueIndex:idx_sharing_note_user;index" json:"shared_with_id"`
	Permission   string    `gorm:"type:varchar(10);default:read" json:"permission"` // read/edit/admin
	CreatedAt    time.Time `json:"created_at"`

	Note       *Note `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SharedWith *User `gorm:"foreignKey:SharedWithID;constraint:OnDelete:CASCADE" json:"shared_with,omitempty"`
}
