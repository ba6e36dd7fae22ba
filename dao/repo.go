package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 通用仓储
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save 只写主表字段，关联集合由调用方显式维护
func (r *Repo[T]) Save(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Omit(clause.Associations).Save(data).Error
}

func (r *Repo[T]) Delete(ctx context.Context, id int64) error {
	var item T
	return r.Db.WithContext(ctx).Delete(&item, id).Error
}

// Txx 在事务中执行
func (r *Repo[T]) Txx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
