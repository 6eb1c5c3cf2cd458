package screen

import (
	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

func doctorFields() []form.Field {
	return []form.Field{
		form.Text("ID", "id", 10).Mandatory(),
		form.Text("First name", "first_name", 30).Mandatory(),
		form.Text("Surname", "surname", 30).Mandatory(),
		form.Text("Address", "address", 100),
		form.Text("Email", "email", 60),
		form.Text("Affiliation", "affiliation", 60),
	}
}

func NewDoctorScreen(uc usecase.DoctorUsecase) Screen {
	return &crud[entity.DoctorRecord]{
		name:  "doctors",
		title: "Doctor",
		variants: []variant{
			{entity.KindDoctor, doctorFields()},
			{entity.KindSpecialist, append(doctorFields(), form.Text("Specialization", "specialization", 40).Mandatory())},
		},
		filters: []form.Field{
			form.Text("ID", "id", 10),
			form.Text("First name", "first_name", 30),
			form.Text("Surname", "surname", 30),
			form.Text("Affiliation", "affiliation", 60),
			form.Text("Specialization", "specialization", 40),
		},
		accessors: filter.Accessors[entity.DoctorRecord]{
			"id":          filter.Text(func(d entity.DoctorRecord) string { return d.Base().ID }),
			"first_name":  filter.Text(func(d entity.DoctorRecord) string { return d.Base().FirstName }),
			"surname":     filter.Text(func(d entity.DoctorRecord) string { return d.Base().Surname }),
			"affiliation": filter.Text(func(d entity.DoctorRecord) string { return d.Base().Affiliation }),
			"specialization": func(d entity.DoctorRecord) (string, bool) {
				s, ok := d.(*entity.Specialist)
				if !ok {
					return "", false
				}
				return s.Specialization, true
			},
		},
		svc:     uc,
		decode:  decodeDoctor,
		encode:  encodeDoctor,
		setID:   func(d entity.DoctorRecord, id string) { d.Base().ID = id },
		respond: func(d entity.DoctorRecord) any { return converter.DoctorToResponse(d) },
	}
}

func decodeDoctor(variant string, dec *form.Decoder) entity.DoctorRecord {
	d := entity.Doctor{
		ID:          textField(dec, "id"),
		FirstName:   textField(dec, "first_name"),
		Surname:     textField(dec, "surname"),
		Address:     textField(dec, "address"),
		Email:       textField(dec, "email"),
		Affiliation: textField(dec, "affiliation"),
	}
	if variant == entity.KindSpecialist {
		return &entity.Specialist{Doctor: d, Specialization: textField(dec, "specialization")}
	}
	return &d
}

func encodeDoctor(rec entity.DoctorRecord) (string, map[string]string) {
	d := rec.Base()
	values := map[string]string{
		"id":          d.ID,
		"first_name":  d.FirstName,
		"surname":     d.Surname,
		"address":     d.Address,
		"email":       d.Email,
		"affiliation": d.Affiliation,
	}
	if s, ok := rec.(*entity.Specialist); ok {
		values["specialization"] = s.Specialization
		return entity.KindSpecialist, values
	}
	return entity.KindDoctor, values
}
