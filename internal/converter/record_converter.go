package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// DateLayout is the wire and form format of calendar dates.
const DateLayout = "2006-01-02"

func DrugToResponse(d *entity.Drug) *dto.DrugResponse {
	if d == nil {
		return nil
	}
	return &dto.DrugResponse{
		ID:          d.ID,
		Name:        d.Name,
		SideEffects: d.SideEffects,
		Benefits:    d.Benefits,
		UnitPrice:   d.UnitPrice,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func InsuranceToResponse(i *entity.Insurance) *dto.InsuranceResponse {
	if i == nil {
		return nil
	}
	return &dto.InsuranceResponse{
		ID:        i.ID,
		Company:   i.Company,
		Address:   i.Address,
		Phone:     i.Phone,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}
	return &dto.PrescriptionResponse{
		ID:           p.ID,
		PrescribedOn: p.PrescribedOn.Format(DateLayout),
		DrugID:       p.DrugID,
		DoctorID:     p.DoctorID,
		PatientID:    p.PatientID,
		Dosage:       p.Dosage,
		DurationDays: p.DurationDays,
		Repeatable:   p.Repeatable,
		Comment:      p.Comment,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func VisitToResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitResponse{
		ID:        v.ID,
		PatientID: v.PatientID,
		DoctorID:  v.DoctorID,
		VisitedOn: v.VisitedOn.Format(DateLayout),
		Symptoms:  v.Symptoms,
		Diagnosis: v.Diagnosis,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
