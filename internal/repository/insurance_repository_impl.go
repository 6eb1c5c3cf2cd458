package repository

import (
	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type insuranceRepository struct {
	gormTable[entity.Insurance]
}

func NewInsuranceRepository(db *gorm.DB) domainRepo.InsuranceRepository {
	return &insuranceRepository{gormTable[entity.Insurance]{db: db, order: "company, id"}}
}
