package screen

import (
	"clinic-records/internal/converter"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

func NewDrugScreen(uc usecase.DrugUsecase) Screen {
	return &crud[*entity.Drug]{
		name:  "drugs",
		title: "Drug",
		variants: []variant{{"drug", []form.Field{
			form.Text("ID", "id", 10).Mandatory(),
			form.Text("Name", "name", 40).Mandatory(),
			form.Text("Side effects", "side_effects", 200),
			form.Text("Benefits", "benefits", 200),
			form.Text("Unit price", "unit_price", 12).WithInitial("0.00"),
		}}},
		filters: []form.Field{
			form.Text("ID", "id", 10),
			form.Text("Name", "name", 40),
			form.Text("Benefits", "benefits", 200),
		},
		accessors: filter.Accessors[*entity.Drug]{
			"id":       filter.Text(func(d *entity.Drug) string { return d.ID }),
			"name":     filter.Text(func(d *entity.Drug) string { return d.Name }),
			"benefits": filter.Text(func(d *entity.Drug) string { return d.Benefits }),
		},
		svc: pointers[entity.Drug]{uc},
		decode: func(_ string, dec *form.Decoder) *entity.Drug {
			return &entity.Drug{
				ID:          textField(dec, "id"),
				Name:        textField(dec, "name"),
				SideEffects: textField(dec, "side_effects"),
				Benefits:    textField(dec, "benefits"),
				UnitPrice:   decimalField(dec, "unit_price"),
			}
		},
		encode: func(d *entity.Drug) (string, map[string]string) {
			return "drug", map[string]string{
				"id":           d.ID,
				"name":         d.Name,
				"side_effects": d.SideEffects,
				"benefits":     d.Benefits,
				"unit_price":   d.UnitPrice.StringFixed(2),
			}
		},
		setID:   func(d *entity.Drug, id string) { d.ID = id },
		respond: func(d *entity.Drug) any { return converter.DrugToResponse(d) },
	}
}
