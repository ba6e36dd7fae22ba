package dao

import (
	"context"

	"gorm.io/gorm"

	"notely/models"
)

type Tags struct {
	*Repo[models.Tag]
}

func NewTags(db *gorm.DB) *Tags {
	return &Tags{Repo: NewRepo[models.Tag](db)}
}

func (d *Tags) FindByOwner(ctx context.Context, userID int64) ([]*models.Tag, error) {
	var list []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&list).Error
	return list, err
}

func (d *Tags) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Tag{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (d *Tags) ExistsName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	var count int64
	q := d.Db.WithContext(ctx).Model(&models.Tag{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Remove 删除标签并清理与笔记的关联
func (d *Tags) Remove(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM note_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// FindOwned 按 ID 集合取属于该用户的标签，调用方据此校验归属
func (d *Tags) FindOwned(ctx context.Context, userID int64, ids []int64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&list).Error
	return list, err
}
