package screen

import (
	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

func NewInsuranceScreen(uc usecase.InsuranceUsecase) Screen {
	return &crud[*entity.Insurance]{
		name:  "insurances",
		title: "Insurance",
		variants: []variant{{"insurance", []form.Field{
			form.Text("ID", "id", 10).Mandatory(),
			form.Text("Company", "company", 60).Mandatory(),
			form.Text("Address", "address", 100),
			form.Text("Phone", "phone", 20),
		}}},
		filters: []form.Field{
			form.Text("ID", "id", 10),
			form.Text("Company", "company", 60),
			form.Text("Address", "address", 100),
		},
		accessors: filter.Accessors[*entity.Insurance]{
			"id":      filter.Text(func(i *entity.Insurance) string { return i.ID }),
			"company": filter.Text(func(i *entity.Insurance) string { return i.Company }),
			"address": filter.Text(func(i *entity.Insurance) string { return i.Address }),
		},
		svc: pointers[entity.Insurance]{uc},
		decode: func(_ string, dec *form.Decoder) *entity.Insurance {
			return &entity.Insurance{
				ID:      textField(dec, "id"),
				Company: textField(dec, "company"),
				Address: textField(dec, "address"),
				Phone:   textField(dec, "phone"),
			}
		},
		encode: func(i *entity.Insurance) (string, map[string]string) {
			return "insurance", map[string]string{
				"id":      i.ID,
				"company": i.Company,
				"address": i.Address,
				"phone":   i.Phone,
			}
		},
		setID:   func(i *entity.Insurance, id string) { i.ID = id },
		respond: func(i *entity.Insurance) any { return converter.InsuranceToResponse(i) },
	}
}
