package dto

// Response DTOs

// DoctorResponse carries both variants; Specialization is empty for a
// plain doctor and Kind says which one it is.
type DoctorResponse struct {
	Kind           string `json:"kind"`
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	Surname        string `json:"surname"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	Affiliation    string `json:"affiliation"`
	Specialization string `json:"specialization,omitempty"`
}
