package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"
)

func samplePatient() *entity.Patient {
	return &entity.Patient{
		ID:        "P001",
		FirstName: "Rui",
		Surname:   "Mendes",
		Postcode:  "1000-001",
		Address:   "Rua Augusta 5",
		Phone:     "+351 210000000",
		Email:     "rui@mail.test",
	}
}

func sampleInsured() *entity.InsuredPatient {
	p := samplePatient()
	p.ID = "P002"
	return &entity.InsuredPatient{Patient: *p, InsurerID: "INS01"}
}

type ghostPatient struct{ *entity.Patient }

func TestPatientRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, rec := range []entity.PatientRecord{samplePatient(), sampleInsured()} {
		t.Run(entity.PatientKind(rec), func(t *testing.T) {
			repo := NewPatientRepository(newFakeDB())
			if err := repo.Insert(ctx, rec); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			got, err := repo.FindByID(ctx, rec.Base().ID)
			if err != nil {
				t.Fatalf("FindByID: %v", err)
			}
			if !reflect.DeepEqual(got, rec) {
				t.Errorf("FindByID = %#v, want %#v", got, rec)
			}
		})
	}
}

func TestPatientRepository_Statements(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	repo := NewPatientRepository(db)

	if err := repo.Insert(ctx, sampleInsured()); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	want := "INSERT INTO patients (id, first_name, surname, postcode, address, phone, email, insurer_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)"
	if sql := db.lastCall().sql; sql != want {
		t.Errorf("insert sql = %q, want %q", sql, want)
	}

	if _, err := repo.FindByID(ctx, "P002"); err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	want = "SELECT id, first_name, surname, postcode, address, phone, email, insurer_id FROM patients WHERE id = $1"
	if sql := db.lastCall().sql; sql != want {
		t.Errorf("select sql = %q, want %q", sql, want)
	}

	plain := sampleInsured().Patient
	if err := repo.Update(ctx, &plain); err != nil {
		t.Fatalf("Update: %v", err)
	}
	want = "UPDATE patients SET first_name = $2, surname = $3, postcode = $4, address = $5, phone = $6, email = $7, insurer_id = NULL WHERE id = $1"
	if sql := db.lastCall().sql; sql != want {
		t.Errorf("update sql = %q, want %q", sql, want)
	}

	got, err := repo.FindByID(ctx, "P002")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if k := entity.PatientKind(got); k != entity.KindPatient {
		t.Errorf("kind after update = %q, want %q", k, entity.KindPatient)
	}
}

func TestPatientRepository_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(repo domainRepo.PatientRepository) error
		want error
	}{
		{
			name: "blank insurer",
			run: func(repo domainRepo.PatientRepository) error {
				p := sampleInsured()
				p.InsurerID = ""
				return repo.Insert(ctx, p)
			},
			want: ErrEmptyDiscriminator,
		},
		{
			name: "unknown variant",
			run: func(repo domainRepo.PatientRepository) error {
				return repo.Update(ctx, ghostPatient{samplePatient()})
			},
			want: ErrUnknownVariant,
		},
		{
			name: "update missing row",
			run: func(repo domainRepo.PatientRepository) error {
				return repo.Update(ctx, samplePatient())
			},
			want: ErrNoRowsAffected,
		},
		{
			name: "delete missing row",
			run: func(repo domainRepo.PatientRepository) error {
				return repo.Delete(ctx, "P404")
			},
			want: ErrNoRowsAffected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(NewPatientRepository(newFakeDB()))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPatientRepository_NotFound(t *testing.T) {
	got, err := NewPatientRepository(newFakeDB()).FindByID(context.Background(), "P404")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Errorf("FindByID = %#v, want nil", got)
	}
}
