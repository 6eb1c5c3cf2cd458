package screen

import (
	"strconv"

	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

func NewPrescriptionScreen(uc usecase.PrescriptionUsecase) Screen {
	return &crud[*entity.Prescription]{
		name:  "prescriptions",
		title: "Prescription",
		variants: []variant{{"prescription", []form.Field{
			form.Text("ID", "id", 10).Mandatory(),
			form.Text("Date (YYYY-MM-DD)", "prescribed_on", 10).Mandatory(),
			form.Text("Drug ID", "drug_id", 10).Mandatory(),
			form.Text("Doctor ID", "doctor_id", 10).Mandatory(),
			form.Text("Patient ID", "patient_id", 10).Mandatory(),
			form.Text("Dosage", "dosage", 40),
			form.Text("Duration (days)", "duration_days", 5).WithInitial("0"),
			form.Bool("Repeatable", "repeatable"),
			form.Text("Comment", "comment", 200),
		}}},
		filters: []form.Field{
			form.Text("ID", "id", 10),
			form.Text("Date", "prescribed_on", 10),
			form.Text("Drug ID", "drug_id", 10),
			form.Text("Doctor ID", "doctor_id", 10),
			form.Text("Patient ID", "patient_id", 10),
		},
		accessors: filter.Accessors[*entity.Prescription]{
			"id":            filter.Text(func(p *entity.Prescription) string { return p.ID }),
			"prescribed_on": filter.Text(func(p *entity.Prescription) string { return formatDate(p.PrescribedOn) }),
			"drug_id":       filter.Text(func(p *entity.Prescription) string { return p.DrugID }),
			"doctor_id":     filter.Text(func(p *entity.Prescription) string { return p.DoctorID }),
			"patient_id":    filter.Text(func(p *entity.Prescription) string { return p.PatientID }),
		},
		svc: pointers[entity.Prescription]{uc},
		decode: func(_ string, dec *form.Decoder) *entity.Prescription {
			return &entity.Prescription{
				ID:           textField(dec, "id"),
				PrescribedOn: dateField(dec, "prescribed_on"),
				DrugID:       textField(dec, "drug_id"),
				DoctorID:     textField(dec, "doctor_id"),
				PatientID:    textField(dec, "patient_id"),
				Dosage:       textField(dec, "dosage"),
				DurationDays: intField(dec, "duration_days"),
				Repeatable:   dec.Bool("repeatable"),
				Comment:      textField(dec, "comment"),
			}
		},
		encode: func(p *entity.Prescription) (string, map[string]string) {
			return "prescription", map[string]string{
				"id":            p.ID,
				"prescribed_on": formatDate(p.PrescribedOn),
				"drug_id":       p.DrugID,
				"doctor_id":     p.DoctorID,
				"patient_id":    p.PatientID,
				"dosage":        p.Dosage,
				"duration_days": strconv.Itoa(p.DurationDays),
				"repeatable":    strconv.FormatBool(p.Repeatable),
				"comment":       p.Comment,
			}
		},
		setID:   func(p *entity.Prescription, id string) { p.ID = id },
		respond: func(p *entity.Prescription) any { return converter.PrescriptionToResponse(p) },
	}
}
