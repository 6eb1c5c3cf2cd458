package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"github.com/jackc/pgx/v5"
)

const patientTable = "patients"

// insurer_id is the discriminator: non-null means InsuredPatient.
var patientColumns = []string{"id", "first_name", "surname", "postcode", "address", "phone", "email", "insurer_id"}

var patientExtension = []string{"insurer_id"}

type patientRepository struct {
	db Querier
}

func NewPatientRepository(db Querier) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func encodePatient(rec entity.PatientRecord) (encoded, error) {
	var e encoded
	switch p := rec.(type) {
	case *entity.InsuredPatient:
		if p == nil {
			return e, fmt.Errorf("%w: nil insured patient", ErrUnknownVariant)
		}
		if p.InsurerID == "" {
			return e, fmt.Errorf("%w: insurer_id", ErrEmptyDiscriminator)
		}
		e = encodePatientBase(&p.Patient)
		e.add("insurer_id", p.InsurerID)
	case *entity.Patient:
		if p == nil {
			return e, fmt.Errorf("%w: nil patient", ErrUnknownVariant)
		}
		e = encodePatientBase(p)
	default:
		return e, fmt.Errorf("%w: %T", ErrUnknownVariant, rec)
	}
	return e, nil
}

func encodePatientBase(p *entity.Patient) encoded {
	var e encoded
	e.add("id", p.ID)
	e.add("first_name", p.FirstName)
	e.add("surname", p.Surname)
	e.add("postcode", p.Postcode)
	e.add("address", p.Address)
	e.add("phone", p.Phone)
	e.add("email", p.Email)
	return e
}

func decodePatient(row scanner) (entity.PatientRecord, error) {
	var p entity.Patient
	var insurerID *string
	err := row.Scan(&p.ID, &p.FirstName, &p.Surname, &p.Postcode, &p.Address, &p.Phone, &p.Email, &insurerID)
	if err != nil {
		return nil, err
	}
	if insurerID != nil {
		return &entity.InsuredPatient{Patient: p, InsurerID: *insurerID}, nil
	}
	return &p, nil
}

func (r *patientRepository) Insert(ctx context.Context, patient entity.PatientRecord) error {
	e, err := encodePatient(patient)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, insertSQL(patientTable, e), e.values...)
	return err
}

func (r *patientRepository) Update(ctx context.Context, patient entity.PatientRecord) error {
	e, err := encodePatient(patient)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, updateSQL(patientTable, e, patientExtension), e.values...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.PatientRecord, error) {
	rows, err := r.db.Query(ctx, selectSQL(patientTable, patientColumns)+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []entity.PatientRecord
	for rows.Next() {
		patient, err := decodePatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, rows.Err()
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (entity.PatientRecord, error) {
	patient, err := decodePatient(r.db.QueryRow(ctx, selectSQL(patientTable, patientColumns)+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return patient, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteSQL(patientTable, "id"), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
