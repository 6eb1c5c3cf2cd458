package entity

import "time"

// Prescription records a drug prescribed by a doctor to a patient.
type Prescription struct {
	ID           string    `gorm:"type:varchar(10);primaryKey" json:"id" validate:"required,max=10"`
	PrescribedOn time.Time `gorm:"type:date;not null" json:"prescribed_on" validate:"required"`
	DrugID       string    `gorm:"type:varchar(10);not null;index" json:"drug_id" validate:"required,max=10"`
	DoctorID     string    `gorm:"type:varchar(10);not null;index" json:"doctor_id" validate:"required,max=10"`
	PatientID    string    `gorm:"type:varchar(10);not null;index" json:"patient_id" validate:"required,max=10"`
	Dosage       string    `gorm:"type:varchar(40)" json:"dosage" validate:"max=40"`
	DurationDays int       `gorm:"not null;default:0" json:"duration_days" validate:"gte=0"`
	Repeatable   bool      `gorm:"not null;default:false" json:"repeatable"`
	Comment      string    `gorm:"type:text" json:"comment" validate:"max=200"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
