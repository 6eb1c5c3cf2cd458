package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	FindAll(ctx context.Context) ([]entity.Prescription, error)
	FindByID(ctx context.Context, id string) (*entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
	Delete(ctx context.Context, id string) error
}
