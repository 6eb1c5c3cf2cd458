package dto

import "time"

type VisitResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	VisitedOn string    `json:"visited_on"` // YYYY-MM-DD
	Symptoms  string    `json:"symptoms"`
	Diagnosis string    `json:"diagnosis"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
