package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Add(ctx context.Context, patient entity.PatientRecord) error
	GetAll(ctx context.Context) []entity.PatientRecord
	GetByID(ctx context.Context, id string) entity.PatientRecord
	// Find is GetByID for write paths: a storage failure is returned as a
	// StorageError instead of being logged away.
	Find(ctx context.Context, id string) (entity.PatientRecord, error)
	Update(ctx context.Context, patient entity.PatientRecord) error
	Delete(ctx context.Context, id string) error
}

type patientUsecase struct {
	recordService
	patientRepo   repository.PatientRepository
	insuranceRepo repository.InsuranceRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	v *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	insuranceRepo repository.InsuranceRepository,
) PatientUsecase {
	return &patientUsecase{
		recordService: recordService{log: log, validator: v, name: "patient"},
		patientRepo:   patientRepo,
		insuranceRepo: insuranceRepo,
	}
}

// checkInsurer rejects an insured patient whose insurer is not on file.
func (u *patientUsecase) checkInsurer(ctx context.Context, patient entity.PatientRecord) error {
	insured, ok := patient.(*entity.InsuredPatient)
	if !ok {
		return nil
	}
	insurance, err := u.insuranceRepo.FindByID(ctx, insured.InsurerID)
	if err != nil {
		return u.writeFailed("check insurer of", err)
	}
	if insurance == nil {
		return fieldError("insurer_id", "insurer "+insured.InsurerID+" does not exist")
	}
	return nil
}

func (u *patientUsecase) Add(ctx context.Context, patient entity.PatientRecord) error {
	if err := u.validate(patient); err != nil {
		return err
	}
	if err := u.checkInsurer(ctx, patient); err != nil {
		return err
	}
	id := patient.Base().ID
	existing, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		return u.writeFailed("check", err)
	}
	if existing != nil {
		return u.duplicate(id)
	}
	if err := u.patientRepo.Insert(ctx, patient); err != nil {
		return u.writeFailed("add", err)
	}
	return nil
}

func (u *patientUsecase) GetAll(ctx context.Context) []entity.PatientRecord {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.readFailed("list", err)
		return []entity.PatientRecord{}
	}
	if patients == nil {
		return []entity.PatientRecord{}
	}
	return patients
}

func (u *patientUsecase) GetByID(ctx context.Context, id string) entity.PatientRecord {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.readFailed("get", err)
		return nil
	}
	return patient
}

func (u *patientUsecase) Find(ctx context.Context, id string) (entity.PatientRecord, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, u.findFailed(err)
	}
	return patient, nil
}

func (u *patientUsecase) Update(ctx context.Context, patient entity.PatientRecord) error {
	if err := u.validate(patient); err != nil {
		return err
	}
	if err := u.checkInsurer(ctx, patient); err != nil {
		return err
	}
	if err := u.patientRepo.Update(ctx, patient); err != nil {
		return u.writeFailed("update", err)
	}
	return nil
}

func (u *patientUsecase) Delete(ctx context.Context, id string) error {
	if err := u.requireID(id); err != nil {
		return err
	}
	if err := u.patientRepo.Delete(ctx, id); err != nil {
		return u.writeFailed("delete", err)
	}
	return nil
}
