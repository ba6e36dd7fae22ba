package dao

import (
	"context"

	"gorm.io/gorm"

	"notely/models"
)

type Users struct {
	*Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

// FindWithProfile 按 ID 取用户及其档案
func (d *Users) FindWithProfile(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).Preload("Profile").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername 按用户名查找，大小写不敏感
func (d *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsUsername 用户名是否被占用，大小写不敏感
func (d *Users) ExistsUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

// ExistsEmail 邮箱是否被占用，大小写不敏感
func (d *Users) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

// CreateWithProfile 同一事务写入用户与档案
func (d *Users) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// FindByExternalID 按外部身份查找已绑定的档案
func (d *Users) FindByExternalID(ctx context.Context, externalID string) (*models.Profile, error) {
	var profile models.Profile
	err := d.Db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// BindExternal 把外部身份与附加信息写回档案
func (d *Users) BindExternal(ctx context.Context, userID int64, externalID string, extra []byte) error {
	return d.Db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"external_id": externalID, "extra": extra}).Error
}

func (d *Users) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
