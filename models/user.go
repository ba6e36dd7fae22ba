package models

import (
	"time"

	"gorm.io/datatypes"
)

// User 用户主表，用户名/邮箱大小写不敏感唯一（utf8mb4 默认排序规则）
type User struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(30);uniqueIndex" json:"username"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Password    string    `gorm:"type:varchar(255)" json:"-"` // bcrypt 哈希
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// Profile 用户扩展信息，与 User 一对一，创建用户时同事务写入
type Profile struct {
	ID         int64          `gorm:"primaryKey" json:"id"`
	UserID     int64          `gorm:"uniqueIndex" json:"user_id"`
	IsAdmin    bool           `gorm:"default:false" json:"is_admin"`
	ExternalID string         `gorm:"type:varchar(255)" json:"external_id,omitempty"` // 外部 OAuth subject
	Extra      datatypes.JSON `json:"extra,omitempty"`                                // 提供方原始返回
}
