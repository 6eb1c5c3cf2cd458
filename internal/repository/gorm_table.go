package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// gormTable holds the CRUD shared by the flat tables. T is a gorm model
// whose primary key column is id.
type gormTable[T any] struct {
	db    *gorm.DB
	order string
}

func (t gormTable[T]) Create(ctx context.Context, rec *T) error {
	return t.db.WithContext(ctx).Create(rec).Error
}

func (t gormTable[T]) FindAll(ctx context.Context) ([]T, error) {
	var recs []T
	if err := t.db.WithContext(ctx).Order(t.order).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (t gormTable[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var rec T
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update rewrites every column of an existing row, zero values included.
// Save would insert a missing row instead of reporting it.
func (t gormTable[T]) Update(ctx context.Context, rec *T) error {
	res := t.db.WithContext(ctx).Model(rec).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (t gormTable[T]) Delete(ctx context.Context, id string) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
