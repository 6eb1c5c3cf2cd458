package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

// DoctorRepository persists the Doctor/Specialist hierarchy in one table.
// FindByID returns nil, nil when no row matches.
type DoctorRepository interface {
	Insert(ctx context.Context, doctor entity.DoctorRecord) error
	Update(ctx context.Context, doctor entity.DoctorRecord) error
	FindAll(ctx context.Context) ([]entity.DoctorRecord, error)
	FindByID(ctx context.Context, id string) (entity.DoctorRecord, error)
	Delete(ctx context.Context, id string) error
}
