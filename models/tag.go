package models

// Tag 标签，(name, user) 不区分大小写唯一；删除标签只解除与笔记的关联
type Tag struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(50);uniqueIndex:idx_tags_name_user" json:"name"`
	UserID int64  `gorm:"uniqueIndex:idx_tags_name_user;index" json:"user_id"`
}

func (t *Tag) OwnerID() int64 {
	return t.UserID
}
