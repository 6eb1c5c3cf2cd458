package usecase

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	Add(ctx context.Context, doctor entity.DoctorRecord) error
	GetAll(ctx context.Context) []entity.DoctorRecord
	GetByID(ctx context.Context, id string) entity.DoctorRecord
	// Find is GetByID for write paths: a storage failure is returned as a
	// StorageError instead of being logged away.
	Find(ctx context.Context, id string) (entity.DoctorRecord, error)
	Update(ctx context.Context, doctor entity.DoctorRecord) error
	Delete(ctx context.Context, id string) error
}

type doctorUsecase struct {
	recordService
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, v *validator.CustomValidator, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		recordService: recordService{log: log, validator: v, name: "doctor"},
		doctorRepo:    doctorRepo,
	}
}

// Add stores a doctor or specialist after checking that no doctor with the
// same id exists.
func (u *doctorUsecase) Add(ctx context.Context, doctor entity.DoctorRecord) error {
	if err := u.validate(doctor); err != nil {
		return err
	}
	id := doctor.Base().ID
	existing, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return u.writeFailed("check", err)
	}
	if existing != nil {
		return u.duplicate(id)
	}
	if err := u.doctorRepo.Insert(ctx, doctor); err != nil {
		return u.writeFailed("add", err)
	}
	return nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) []entity.DoctorRecord {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.readFailed("list", err)
		return []entity.DoctorRecord{}
	}
	if doctors == nil {
		return []entity.DoctorRecord{}
	}
	return doctors
}

func (u *doctorUsecase) GetByID(ctx context.Context, id string) entity.DoctorRecord {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.readFailed("get", err)
		return nil
	}
	return doctor
}

func (u *doctorUsecase) Find(ctx context.Context, id string) (entity.DoctorRecord, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, u.findFailed(err)
	}
	return doctor, nil
}

func (u *doctorUsecase) Update(ctx context.Context, doctor entity.DoctorRecord) error {
	if err := u.validate(doctor); err != nil {
		return err
	}
	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		return u.writeFailed("update", err)
	}
	return nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id string) error {
	if err := u.requireID(id); err != nil {
		return err
	}
	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		return u.writeFailed("delete", err)
	}
	return nil
}
