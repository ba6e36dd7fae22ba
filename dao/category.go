package dao

import (
	"context"

	"gorm.io/gorm"

	"notely/models"
)

type Categories struct {
	*Repo[models.Category]
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{Repo: NewRepo[models.Category](db)}
}

// FindByOwner 按所有者列出全部分类
func (d *Categories) FindByOwner(ctx context.Context, userID int64) ([]*models.Category, error) {
	var list []*models.Category
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&list).Error
	return list, err
}

func (d *Categories) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ExistsName 名称在所有者下是否重复，大小写不敏感，excludeID 用于更新时排除自身
func (d *Categories) ExistsName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	var count int64
	q := d.Db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// TopByNotes 按笔记数取前 limit 个分类
func (d *Categories) TopByNotes(ctx context.Context, userID int64, limit int) ([]*CategoryCount, error) {
	var rows []*CategoryCount
	err := d.Db.WithContext(ctx).Model(&models.Category{}).
		Select("categories.id, categories.name, COUNT(notes.id) AS notes_count").
		Joins("LEFT JOIN notes ON notes.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id, categories.name").
		Order("notes_count DESC, categories.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CategoryCount 分类聚合行
type CategoryCount struct {
	ID         int64
	Name       string
	NotesCount int64
}
