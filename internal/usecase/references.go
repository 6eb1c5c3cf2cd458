package usecase

import (
	"context"

	"clinic-records/internal/domain/repository"
)

// references checks that the drug, doctor and patient a record points at
// are on file. An empty id is skipped; validation has already required the
// ones that matter.
type references struct {
	svc      recordService
	drugs    repository.DrugRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
}

func (r references) verify(ctx context.Context, drugID, doctorID, patientID string) error {
	if drugID != "" && r.drugs != nil {
		drug, err := r.drugs.FindByID(ctx, drugID)
		if err != nil {
			return r.svc.writeFailed("check drug of", err)
		}
		if drug == nil {
			return fieldError("drug_id", "drug "+drugID+" does not exist")
		}
	}
	if doctorID != "" && r.doctors != nil {
		doctor, err := r.doctors.FindByID(ctx, doctorID)
		if err != nil {
			return r.svc.writeFailed("check doctor of", err)
		}
		if doctor == nil {
			return fieldError("doctor_id", "doctor "+doctorID+" does not exist")
		}
	}
	if patientID != "" && r.patients != nil {
		patient, err := r.patients.FindByID(ctx, patientID)
		if err != nil {
			return r.svc.writeFailed("check patient of", err)
		}
		if patient == nil {
			return fieldError("patient_id", "patient "+patientID+" does not exist")
		}
	}
	return nil
}
