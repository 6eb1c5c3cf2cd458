package screen

import (
	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

func patientFields() []form.Field {
	return []form.Field{
		form.Text("ID", "id", 10).Mandatory(),
		form.Text("First name", "first_name", 30).Mandatory(),
		form.Text("Surname", "surname", 30).Mandatory(),
		form.Text("Postcode", "postcode", 10),
		form.Text("Address", "address", 100),
		form.Text("Phone", "phone", 20),
		form.Text("Email", "email", 60),
	}
}

func NewPatientScreen(uc usecase.PatientUsecase) Screen {
	return &crud[entity.PatientRecord]{
		name:  "patients",
		title: "Patient",
		variants: []variant{
			{entity.KindPatient, patientFields()},
			{entity.KindInsured, append(patientFields(), form.Text("Insurer ID", "insurer_id", 10).Mandatory())},
		},
		filters: []form.Field{
			form.Text("ID", "id", 10),
			form.Text("First name", "first_name", 30),
			form.Text("Surname", "surname", 30),
			form.Text("Postcode", "postcode", 10),
			form.Text("Insurer ID", "insurer_id", 10),
		},
		accessors: filter.Accessors[entity.PatientRecord]{
			"id":         filter.Text(func(p entity.PatientRecord) string { return p.Base().ID }),
			"first_name": filter.Text(func(p entity.PatientRecord) string { return p.Base().FirstName }),
			"surname":    filter.Text(func(p entity.PatientRecord) string { return p.Base().Surname }),
			"postcode":   filter.Text(func(p entity.PatientRecord) string { return p.Base().Postcode }),
			"insurer_id": func(p entity.PatientRecord) (string, bool) {
				ins, ok := p.(*entity.InsuredPatient)
				if !ok {
					return "", false
				}
				return ins.InsurerID, true
			},
		},
		svc:     uc,
		decode:  decodePatient,
		encode:  encodePatient,
		setID:   func(p entity.PatientRecord, id string) { p.Base().ID = id },
		respond: func(p entity.PatientRecord) any { return converter.PatientToResponse(p) },
	}
}

func decodePatient(variant string, dec *form.Decoder) entity.PatientRecord {
	p := entity.Patient{
		ID:        textField(dec, "id"),
		FirstName: textField(dec, "first_name"),
		Surname:   textField(dec, "surname"),
		Postcode:  textField(dec, "postcode"),
		Address:   textField(dec, "address"),
		Phone:     textField(dec, "phone"),
		Email:     textField(dec, "email"),
	}
	if variant == entity.KindInsured {
		return &entity.InsuredPatient{Patient: p, InsurerID: textField(dec, "insurer_id")}
	}
	return &p
}

func encodePatient(rec entity.PatientRecord) (string, map[string]string) {
	p := rec.Base()
	values := map[string]string{
		"id":         p.ID,
		"first_name": p.FirstName,
		"surname":    p.Surname,
		"postcode":   p.Postcode,
		"address":    p.Address,
		"phone":      p.Phone,
		"email":      p.Email,
	}
	if ins, ok := rec.(*entity.InsuredPatient); ok {
		values["insurer_id"] = ins.InsurerID
		return entity.KindInsured, values
	}
	return entity.KindPatient, values
}
