package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type VisitUsecase interface {
	Add(ctx context.Context, visit *entity.Visit) error
	GetAll(ctx context.Context) []entity.Visit
	GetByID(ctx context.Context, id string) *entity.Visit
	Find(ctx context.Context, id string) (*entity.Visit, error)
	Update(ctx context.Context, visit *entity.Visit) error
	Delete(ctx context.Context, id string) error
}

// Visit ids are generated, so Add never looks the id up first.
type visitUsecase struct {
	*tableService[entity.Visit]
}

func NewVisitUsecase(
	log *logrus.Logger,
	v *validator.CustomValidator,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) VisitUsecase {
	svc := &tableService[entity.Visit]{
		recordService: recordService{log: log, validator: v, name: "visit"},
		repo:          visitRepo,
		idOf:          func(v *entity.Visit) string { return v.ID },
	}
	refs := references{svc: svc.recordService, doctors: doctorRepo, patients: patientRepo}
	svc.check = func(ctx context.Context, visit *entity.Visit) error {
		if _, err := uuid.Parse(visit.ID); err != nil {
			return fieldError("id", "id must be a UUID")
		}
		return refs.verify(ctx, "", visit.DoctorID, visit.PatientID)
	}
	return &visitUsecase{svc}
}

func (u *visitUsecase) Add(ctx context.Context, visit *entity.Visit) error {
	if visit != nil && visit.ID == "" {
		visit.ID = uuid.NewString()
	}
	return u.tableService.Add(ctx, visit)
}
