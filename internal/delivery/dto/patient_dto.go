package dto

// Response DTOs

type PatientResponse struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Postcode  string `json:"postcode"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	InsurerID string `json:"insurer_id,omitempty"`
}
