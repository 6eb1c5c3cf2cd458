package entity

const (
	KindDoctor     = "doctor"
	KindSpecialist = "specialist"
)

// DoctorRecord is one row of the doctors table. It is implemented by
// *Doctor and *Specialist only.
type DoctorRecord interface {
	Base() *Doctor
	doctorRecord()
}

// Doctor is the base record. The identifier never changes once created.
type Doctor struct {
	ID          string `json:"id" validate:"required,max=10"`
	FirstName   string `json:"first_name" validate:"required,max=30"`
	Surname     string `json:"surname" validate:"required,max=30"`
	Address     string `json:"address" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email,max=60"`
	Affiliation string `json:"affiliation" validate:"max=60"`
}

func (d *Doctor) Base() *Doctor { return d }

func (*Doctor) doctorRecord() {}

// Specialist is a Doctor whose specialization column is set.
type Specialist struct {
	Doctor
	Specialization string `json:"specialization" validate:"required,max=40"`
}

func (s *Specialist) Base() *Doctor { return &s.Doctor }

// DoctorKind names the variant of rec, or "" for an unknown implementation.
func DoctorKind(rec DoctorRecord) string {
	switch rec.(type) {
	case *Specialist:
		return KindSpecialist
	case *Doctor:
		return KindDoctor
	default:
		return ""
	}
}
