package dao

import (
	"context"

	"gorm.io/gorm"

	"notely/models"
)

type Attachments struct {
	*Repo[models.NoteAttachment]
}

func NewAttachments(db *gorm.DB) *Attachments {
	return &Attachments{Repo: NewRepo[models.NoteAttachment](db)}
}

func (d *Attachments) FindByNote(ctx context.Context, noteID int64) ([]*models.NoteAttachment, error) {
	var list []*models.NoteAttachment
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("uploaded_at asc").
		Find(&list).Error
	return list, err
}

// CountByOwner 某用户全部笔记下的附件数
func (d *Attachments) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.NoteAttachment{}).
		Joins("JOIN notes ON notes.id = note_attachments.note_id").
		Where("notes.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SumSizeByOwner 某用户全部附件的字节数之和
func (d *Attachments) SumSizeByOwner(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.NoteAttachment{}).
		Joins("JOIN notes ON notes.id = note_attachments.note_id").
		Where("notes.user_id = ?", userID).
		Select("COALESCE(SUM(note_attachments.file_size), 0)").
		Scan(&total).Error
	return total, err
}

// SumSizeAll 全站附件字节数
func (d *Attachments) SumSizeAll(ctx context.Context) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.NoteAttachment{}).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&total).Error
	return total, err
}
