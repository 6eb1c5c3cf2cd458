package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

type DrugUsecase interface {
	Add(ctx context.Context, drug *entity.Drug) error
	GetAll(ctx context.Context) []entity.Drug
	GetByID(ctx context.Context, id string) *entity.Drug
	Find(ctx context.Context, id string) (*entity.Drug, error)
	Update(ctx context.Context, drug *entity.Drug) error
	Delete(ctx context.Context, id string) error
}

type drugUsecase struct {
	*tableService[entity.Drug]
}

func NewDrugUsecase(log *logrus.Logger, v *validator.CustomValidator, drugRepo repository.DrugRepository) DrugUsecase {
	return &drugUsecase{&tableService[entity.Drug]{
		recordService: recordService{log: log, validator: v, name: "drug"},
		repo:          drugRepo,
		idOf:          func(d *entity.Drug) string { return d.ID },
		unique:        true,
		check:         checkDrugPrice,
	}}
}

func checkDrugPrice(_ context.Context, drug *entity.Drug) error {
	if drug.UnitPrice.IsNegative() {
		return fieldError("unit_price", "unit_price must not be negative")
	}
	return nil
}
