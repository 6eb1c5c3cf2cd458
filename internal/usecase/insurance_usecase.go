package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

type InsuranceUsecase interface {
	Add(ctx context.Context, insurance *entity.Insurance) error
	GetAll(ctx context.Context) []entity.Insurance
	GetByID(ctx context.Context, id string) *entity.Insurance
	Find(ctx context.Context, id string) (*entity.Insurance, error)
	Update(ctx context.Context, insurance *entity.Insurance) error
	Delete(ctx context.Context, id string) error
}

type insuranceUsecase struct {
	*tableService[entity.Insurance]
}

func NewInsuranceUsecase(log *logrus.Logger, v *validator.CustomValidator, insuranceRepo repository.InsuranceRepository) InsuranceUsecase {
	return &insuranceUsecase{&tableService[entity.Insurance]{
		recordService: recordService{log: log, validator: v, name: "insurance"},
		repo:          insuranceRepo,
		idOf:          func(i *entity.Insurance) string { return i.ID },
		unique:        true,
	}}
}
