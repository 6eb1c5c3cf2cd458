package entity

import "time"

// Visit is a patient's attendance with a doctor. Its ID is generated.
type Visit struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID string    `gorm:"type:varchar(10);not null;index" json:"patient_id" validate:"required,max=10"`
	DoctorID  string    `gorm:"type:varchar(10);not null;index" json:"doctor_id" validate:"required,max=10"`
	VisitedOn time.Time `gorm:"type:date;not null;index" json:"visited_on" validate:"required"`
	Symptoms  string    `gorm:"type:text" json:"symptoms" validate:"max=200"`
	Diagnosis string    `gorm:"type:text" json:"diagnosis" validate:"max=200"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Visit) TableName() string {
	return "visits"
}
