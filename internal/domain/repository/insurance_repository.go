package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type InsuranceRepository interface {
	Create(ctx context.Context, insurance *entity.Insurance) error
	FindAll(ctx context.Context) ([]entity.Insurance, error)
	FindByID(ctx context.Context, id string) (*entity.Insurance, error)
	Update(ctx context.Context, insurance *entity.Insurance) error
	Delete(ctx context.Context, id string) error
}
