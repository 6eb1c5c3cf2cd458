package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PrescriptionUsecase interface {
	Add(ctx context.Context, prescription *entity.Prescription) error
	GetAll(ctx context.Context) []entity.Prescription
	GetByID(ctx context.Context, id string) *entity.Prescription
	Find(ctx context.Context, id string) (*entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
	Delete(ctx context.Context, id string) error
}

type prescriptionUsecase struct {
	*tableService[entity.Prescription]
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	v *validator.CustomValidator,
	prescriptionRepo repository.PrescriptionRepository,
	drugRepo repository.DrugRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) PrescriptionUsecase {
	svc := &tableService[entity.Prescription]{
		recordService: recordService{log: log, validator: v, name: "prescription"},
		repo:          prescriptionRepo,
		idOf:          func(p *entity.Prescription) string { return p.ID },
		unique:        true,
	}
	refs := references{svc: svc.recordService, drugs: drugRepo, doctors: doctorRepo, patients: patientRepo}
	svc.check = func(ctx context.Context, p *entity.Prescription) error {
		return refs.verify(ctx, p.DrugID, p.DoctorID, p.PatientID)
	}
	return &prescriptionUsecase{svc}
}
