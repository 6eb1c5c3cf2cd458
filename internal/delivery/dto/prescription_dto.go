package dto

import "time"

type PrescriptionResponse struct {
	ID           string    `json:"id"`
	PrescribedOn string    `json:"prescribed_on"` // YYYY-MM-DD
	DrugID       string    `json:"drug_id"`
	DoctorID     string    `json:"doctor_id"`
	PatientID    string    `json:"patient_id"`
	Dosage       string    `json:"dosage"`
	DurationDays int       `json:"duration_days"`
	Repeatable   bool      `json:"repeatable"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
