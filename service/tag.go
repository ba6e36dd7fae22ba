package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notely/dao"
	"notely/models"
	"notely/pkg/response"
	"notely/pkg/snowflake"
	"notely/pkg/validate"
)

type TagService struct {
	tags  *dao.Tags
	quota *QuotaService
}

func NewTagService(tags *dao.Tags, quota *QuotaService) *TagService {
	return &TagService{tags: tags, quota: quota}
}

func (s *TagService) List(ctx context.Context, userID int64) ([]*models.Tag, error) {
	return s.tags.FindByOwner(ctx, userID)
}

func (s *TagService) Create(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	if err := validate.TagName(name); err != nil {
		return nil, err
	}
	if err := s.quota.CheckTagCount(ctx, userID); err != nil {
		return nil, err
	}
	if exists, err := s.tags.ExistsName(ctx, userID, name, 0); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("name", "duplicate_name", "you already have a tag with this name")
	}

	tag := &models.Tag{ID: snowflake.GenID(), Name: name, UserID: userID}
	if err := s.tags.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("name", "duplicate_name", "you already have a tag with this name")
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, userID, id int64, name string) (*models.Tag, error) {
	tag, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := validate.TagName(name); err != nil {
		return nil, err
	}
	if exists, err := s.tags.ExistsName(ctx, userID, name, id); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("name", "duplicate_name", "you already have a tag with this name")
	}

	tag.Name = name
	if err := s.tags.Save(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("name", "duplicate_name", "you already have a tag with this name")
		}
		return nil, err
	}
	return tag, nil
}

// Delete 删除标签，笔记与标签的关联随之解除
func (s *TagService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.tags.Remove(ctx, id)
}

func (s *TagService) findOwned(ctx context.Context, userID, id int64) (*models.Tag, error) {
	tag, err := s.tags.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("tag not found")
		}
		return nil, err
	}
	if tag.UserID != userID {
		return nil, response.NotFound("tag not found")
	}
	return tag, nil
}
