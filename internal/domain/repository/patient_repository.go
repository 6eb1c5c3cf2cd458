package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type PatientRepository interface {
	Insert(ctx context.Context, patient entity.PatientRecord) error
	Update(ctx context.Context, patient entity.PatientRecord) error
	FindAll(ctx context.Context) ([]entity.PatientRecord, error)
	FindByID(ctx context.Context, id string) (entity.PatientRecord, error)
	Delete(ctx context.Context, id string) error
}
