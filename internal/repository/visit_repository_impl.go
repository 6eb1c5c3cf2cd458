package repository

import (
	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct {
	gormTable[entity.Visit]
}

func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{gormTable[entity.Visit]{db: db, order: "visited_on DESC, id"}}
}
