package repository

import (
	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type drugRepository struct {
	gormTable[entity.Drug]
}

func NewDrugRepository(db *gorm.DB) domainRepo.DrugRepository {
	return &drugRepository{gormTable[entity.Drug]{db: db, order: "name, id"}}
}
