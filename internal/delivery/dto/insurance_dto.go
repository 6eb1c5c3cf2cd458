package dto

import "time"

type InsuranceResponse struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
