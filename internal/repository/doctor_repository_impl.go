package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"github.com/jackc/pgx/v5"
)

const doctorTable = "doctors"

// doctorColumns is the full row in scan order. specialization is the
// discriminator: non-null means the row is a Specialist.
var doctorColumns = []string{"id", "first_name", "surname", "address", "email", "affiliation", "specialization"}

var doctorExtension = []string{"specialization"}

type doctorRepository struct {
	db Querier
}

func NewDoctorRepository(db Querier) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

// encodeDoctor decides which columns a variant writes.
func encodeDoctor(rec entity.DoctorRecord) (encoded, error) {
	var e encoded
	switch d := rec.(type) {
	case *entity.Specialist:
		if d == nil {
			return e, fmt.Errorf("%w: nil specialist", ErrUnknownVariant)
		}
		if d.Specialization == "" {
			return e, fmt.Errorf("%w: specialization", ErrEmptyDiscriminator)
		}
		e = encodeDoctorBase(&d.Doctor)
		e.add("specialization", d.Specialization)
	case *entity.Doctor:
		if d == nil {
			return e, fmt.Errorf("%w: nil doctor", ErrUnknownVariant)
		}
		e = encodeDoctorBase(d)
	default:
		return e, fmt.Errorf("%w: %T", ErrUnknownVariant, rec)
	}
	return e, nil
}

func encodeDoctorBase(d *entity.Doctor) encoded {
	var e encoded
	e.add("id", d.ID)
	e.add("first_name", d.FirstName)
	e.add("surname", d.Surname)
	e.add("address", d.Address)
	e.add("email", d.Email)
	e.add("affiliation", d.Affiliation)
	return e
}

// decodeDoctor reads one full row; a non-null specialization is the only
// thing that makes it a Specialist.
func decodeDoctor(row scanner) (entity.DoctorRecord, error) {
	var d entity.Doctor
	var specialization *string
	err := row.Scan(&d.ID, &d.FirstName, &d.Surname, &d.Address, &d.Email, &d.Affiliation, &specialization)
	if err != nil {
		return nil, err
	}
	if specialization != nil {
		return &entity.Specialist{Doctor: d, Specialization: *specialization}, nil
	}
	return &d, nil
}

func (r *doctorRepository) Insert(ctx context.Context, doctor entity.DoctorRecord) error {
	e, err := encodeDoctor(doctor)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, insertSQL(doctorTable, e), e.values...)
	return err
}

func (r *doctorRepository) Update(ctx context.Context, doctor entity.DoctorRecord) error {
	e, err := encodeDoctor(doctor)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, updateSQL(doctorTable, e, doctorExtension), e.values...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.DoctorRecord, error) {
	rows, err := r.db.Query(ctx, selectSQL(doctorTable, doctorColumns)+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []entity.DoctorRecord
	for rows.Next() {
		doctor, err := decodeDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (entity.DoctorRecord, error) {
	doctor, err := decodeDoctor(r.db.QueryRow(ctx, selectSQL(doctorTable, doctorColumns)+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteSQL(doctorTable, "id"), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
