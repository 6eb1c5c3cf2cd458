package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
)

type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}
