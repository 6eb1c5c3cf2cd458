package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Drug struct {
	ID          string          `gorm:"type:varchar(10);primaryKey" json:"id" validate:"required,max=10"`
	Name        string          `gorm:"type:varchar(40);not null;index" json:"name" validate:"required,max=40"`
	SideEffects string          `gorm:"type:text" json:"side_effects" validate:"max=200"`
	Benefits    string          `gorm:"type:text" json:"benefits" validate:"max=200"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Drug) TableName() string {
	return "drugs"
}
