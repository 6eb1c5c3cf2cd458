package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

// recordService holds what every entity service does the same way:
// validate before writing, wrap failed writes, log and swallow failed reads.
type recordService struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	name      string
}

func (s recordService) validate(rec any) error {
	if isNil(rec) {
		return &ValidationError{Message: s.name + " is required"}
	}
	if err := s.validator.Validate(rec); err != nil {
		return &ValidationError{
			Message: "invalid " + s.name,
			Fields:  s.validator.FormatValidationErrors(err),
		}
	}
	return nil
}

func (s recordService) requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fieldError("id", "id is required")
	}
	return nil
}

func (s recordService) duplicate(id string) error {
	return fieldError("id", s.name+" "+id+" already exists")
}

// writeFailed logs a failed write and turns it into the error the caller
// sees: ErrNotFound for a missing row, a ValidationError for a duplicate key
// that slipped past the pre-check, a StorageError otherwise.
func (s recordService) writeFailed(op string, err error) error {
	s.log.Warnf("Failed to %s %s: %+v", op, s.name, err)
	switch {
	case errors.Is(err, repository.ErrNoRowsAffected):
		return ErrNotFound
	case isDuplicateKeyError(err):
		return fieldError("id", s.name+" already exists")
	}
	return &StorageError{Op: op + " " + s.name, Err: err}
}

func (s recordService) readFailed(op string, err error) {
	s.log.Warnf("Failed to %s %s: %+v", op, s.name, err)
}

// findFailed is readFailed for lookups made on behalf of a write, where the
// caller must see the failure.
func (s recordService) findFailed(err error) error {
	s.log.Warnf("Failed to find %s: %+v", s.name, err)
	return &StorageError{Op: "find " + s.name, Err: err}
}

// tableRepository is the shape shared by the flat-table repositories.
type tableRepository[T any] interface {
	Create(ctx context.Context, rec *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id string) error
}

// tableService is the service for a flat table. unique turns on the id
// pre-check on Add; check runs entity-specific rules after validation.
type tableService[T any] struct {
	recordService
	repo   tableRepository[T]
	idOf   func(*T) string
	unique bool
	check  func(ctx context.Context, rec *T) error
}

func (s *tableService[T]) Add(ctx context.Context, rec *T) error {
	if err := s.validate(rec); err != nil {
		return err
	}
	if s.check != nil {
		if err := s.check(ctx, rec); err != nil {
			return err
		}
	}
	if s.unique {
		existing, err := s.repo.FindByID(ctx, s.idOf(rec))
		if err != nil {
			return s.writeFailed("check", err)
		}
		if existing != nil {
			return s.duplicate(s.idOf(rec))
		}
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return s.writeFailed("add", err)
	}
	return nil
}

func (s *tableService[T]) GetAll(ctx context.Context) []T {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.readFailed("list", err)
		return []T{}
	}
	if recs == nil {
		return []T{}
	}
	return recs
}

func (s *tableService[T]) GetByID(ctx context.Context, id string) *T {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.readFailed("get", err)
		return nil
	}
	return rec
}

// Find returns nil, nil when no row matches and a StorageError when the
// lookup itself fails.
func (s *tableService[T]) Find(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.findFailed(err)
	}
	return rec, nil
}

func (s *tableService[T]) Update(ctx context.Context, rec *T) error {
	if err := s.validate(rec); err != nil {
		return err
	}
	if s.check != nil {
		if err := s.check(ctx, rec); err != nil {
			return err
		}
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return s.writeFailed("update", err)
	}
	return nil
}

func (s *tableService[T]) Delete(ctx context.Context, id string) error {
	if err := s.requireID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.writeFailed("delete", err)
	}
	return nil
}
