package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	FindAll(ctx context.Context) ([]entity.Visit, error)
	FindByID(ctx context.Context, id string) (*entity.Visit, error)
	Update(ctx context.Context, visit *entity.Visit) error
	Delete(ctx context.Context, id string) error
}
