package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type DrugRepository interface {
	Create(ctx context.Context, drug *entity.Drug) error
	FindAll(ctx context.Context) ([]entity.Drug, error)
	FindByID(ctx context.Context, id string) (*entity.Drug, error)
	Update(ctx context.Context, drug *entity.Drug) error
	Delete(ctx context.Context, id string) error
}
