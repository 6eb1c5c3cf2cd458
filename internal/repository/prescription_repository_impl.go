package repository

import (
	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct {
	gormTable[entity.Prescription]
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{gormTable[entity.Prescription]{db: db, order: "prescribed_on DESC, id"}}
}
