package models

import "time"

// Category 分类，(name, user) 不区分大小写唯一；删除分类时笔记的分类引用置空
type Category struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex:idx_categories_name_user" json:"name"`
	UserID    int64     `gorm:"uniqueIndex:idx_categories_name_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) OwnerID() int64 {
	return c.UserID
}
