package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type DrugResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SideEffects string          `json:"side_effects"`
	Benefits    string          `json:"benefits"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
