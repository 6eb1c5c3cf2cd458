package entity

const (
	KindPatient = "patient"
	KindInsured = "insured"
)

// PatientRecord is one row of the patients table: a *Patient or an
// *InsuredPatient.
type PatientRecord interface {
	Base() *Patient
	patientRecord()
}

type Patient struct {
	ID        string `json:"id" validate:"required,max=10"`
	FirstName string `json:"first_name" validate:"required,max=30"`
	Surname   string `json:"surname" validate:"required,max=30"`
	Postcode  string `json:"postcode" validate:"max=10"`
	Address   string `json:"address" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=60"`
}

func (p *Patient) Base() *Patient { return p }

func (*Patient) patientRecord() {}

// InsuredPatient links a patient to an insurer through insurer_id.
type InsuredPatient struct {
	Patient
	InsurerID string `json:"insurer_id" validate:"required,max=10"`
}

func (p *InsuredPatient) Base() *Patient { return &p.Patient }

func PatientKind(rec PatientRecord) string {
	switch rec.(type) {
	case *InsuredPatient:
		return KindInsured
	case *Patient:
		return KindPatient
	default:
		return ""
	}
}
