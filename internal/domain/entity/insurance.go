package entity

import "time"

// Insurance is an insurer that InsuredPatient rows point at.
type Insurance struct {
	ID        string    `gorm:"type:varchar(10);primaryKey" json:"id" validate:"required,max=10"`
	Company   string    `gorm:"type:varchar(60);not null;index" json:"company" validate:"required,max=60"`
	Address   string    `gorm:"type:varchar(100)" json:"address" validate:"max=100"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone" validate:"max=20"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Insurance) TableName() string {
	return "insurances"
}
