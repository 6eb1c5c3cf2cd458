package screen

import (
	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

// Visits have no id field: the service assigns one on Add and Update takes
// it from the address.
func NewVisitScreen(uc usecase.VisitUsecase) Screen {
	return &crud[*entity.Visit]{
		name:  "visits",
		title: "Visit",
		variants: []variant{{"visit", []form.Field{
			form.Text("Patient ID", "patient_id", 10).Mandatory(),
			form.Text("Doctor ID", "doctor_id", 10).Mandatory(),
			form.Text("Date (YYYY-MM-DD)", "visited_on", 10).Mandatory(),
			form.Text("Symptoms", "symptoms", 200),
			form.Text("Diagnosis", "diagnosis", 200),
		}}},
		filters: []form.Field{
			form.Text("Patient ID", "patient_id", 10),
			form.Text("Doctor ID", "doctor_id", 10),
			form.Text("Date", "visited_on", 10),
			form.Text("Diagnosis", "diagnosis", 200),
		},
		accessors: filter.Accessors[*entity.Visit]{
			"patient_id": filter.Text(func(v *entity.Visit) string { return v.PatientID }),
			"doctor_id":  filter.Text(func(v *entity.Visit) string { return v.DoctorID }),
			"visited_on": filter.Text(func(v *entity.Visit) string { return formatDate(v.VisitedOn) }),
			"diagnosis":  filter.Text(func(v *entity.Visit) string { return v.Diagnosis }),
		},
		svc: pointers[entity.Visit]{uc},
		decode: func(_ string, dec *form.Decoder) *entity.Visit {
			return &entity.Visit{
				PatientID: textField(dec, "patient_id"),
				DoctorID:  textField(dec, "doctor_id"),
				VisitedOn: dateField(dec, "visited_on"),
				Symptoms:  textField(dec, "symptoms"),
				Diagnosis: textField(dec, "diagnosis"),
			}
		},
		encode: func(v *entity.Visit) (string, map[string]string) {
			return "visit", map[string]string{
				"patient_id": v.PatientID,
				"doctor_id":  v.DoctorID,
				"visited_on": formatDate(v.VisitedOn),
				"symptoms":   v.Symptoms,
				"diagnosis":  v.Diagnosis,
			}
		},
		setID:   func(v *entity.Visit, id string) { v.ID = id },
		respond: func(v *entity.Visit) any { return converter.VisitToResponse(v) },
	}
}
