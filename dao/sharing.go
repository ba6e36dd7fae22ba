package dao

import (
	"context"

	"gorm.io/gorm"

	"notely/models"
)

type Sharings struct {
	*Repo[models.NoteSharing]
}

func NewSharings(db *gorm.DB) *Sharings {
	return &Sharings{Repo: NewRepo[models.NoteSharing](db)}
}

func (d *Sharings) CountByNote(ctx context.Context, noteID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.NoteSharing{}).
		Where("note_id = ?", noteID).
		Count(&count).Error
	return count, err
}

// FindGrant 取某用户在某笔记上的授权
func (d *Sharings) FindGrant(ctx context.Context, noteID, userID int64) (*models.NoteSharing, error) {
	var sharing models.NoteSharing
	err := d.Db.WithContext(ctx).
		Where("note_id = ? AND shared_with_id = ?", noteID, userID).
		First(&sharing).Error
	if err != nil {
		return nil, err
	}
	return &sharing, nil
}

// FindByNote 列出一条笔记的全部授权
func (d *Sharings) FindByNote(ctx context.Context, noteID int64) ([]*models.NoteSharing, error) {
	var list []*models.NoteSharing
	err := d.Db.WithContext(ctx).
		Preload("SharedWith").
		Where("note_id = ?", noteID).
		Order("created_at asc").
		Find(&list).Error
	return list, err
}

// SharedNoteIDs 共享给该用户的笔记 ID 集合
func (d *Sharings) SharedNoteIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.NoteSharing{}).
		Where("shared_with_id = ?", userID).
		Pluck("note_id", &ids).Error
	return ids, err
}

// SharedWithUser 共享给该用户的笔记列表，按共享时间倒序
func (d *Sharings) SharedWithUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	var list []*models.Note
	err := d.Db.WithContext(ctx).Model(&models.Note{}).
		Joins("JOIN note_sharings ON note_sharings.note_id = notes.id").
		Where("note_sharings.shared_with_id = ?", userID).
		Preload("Category").
		Preload("Tags").
		Order("note_sharings.created_at desc").
		Find(&list).Error
	return list, err
}

func (d *Sharings) CountSharedWith(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.NoteSharing{}).
		Where("shared_with_id = ?", userID).
		Count(&count).Error
	return count, err
}
