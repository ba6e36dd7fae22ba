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

type CategoryService struct {
	categories *dao.Categories
	quota      *QuotaService
}

func NewCategoryService(categories *dao.Categories, quota *QuotaService) *CategoryService {
	return &CategoryService{categories: categories, quota: quota}
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]*models.Category, error) {
	return s.categories.FindByOwner(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID int64, name string) (*models.Category, error) {
	if err := validate.CategoryName(name); err != nil {
		return nil, err
	}
	if err := s.quota.CheckCategoryCount(ctx, userID); err != nil {
		return nil, err
	}
	if exists, err := s.categories.ExistsName(ctx, userID, name, 0); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("name", "duplicate_name", "you already have a category with this name")
	}

	category := &models.Category{ID: snowflake.GenID(), Name: name, UserID: userID}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("name", "duplicate_name", "you already have a category with this name")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id int64, name string) (*models.Category, error) {
	category, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := validate.CategoryName(name); err != nil {
		return nil, err
	}
	if exists, err := s.categories.ExistsName(ctx, userID, name, id); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("name", "duplicate_name", "you already have a category with this name")
	}

	category.Name = name
	if err := s.categories.Save(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("name", "duplicate_name", "you already have a category with this name")
		}
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，关联笔记的分类引用由外键置空
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

// findOwned 私有资源，非归属者一律按不存在处理
func (s *CategoryService) findOwned(ctx context.Context, userID, id int64) (*models.Category, error) {
	category, err := s.categories.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("category not found")
		}
		return nil, err
	}
	if category.UserID != userID {
		return nil, response.NotFound("category not found")
	}
	return category, nil
}
