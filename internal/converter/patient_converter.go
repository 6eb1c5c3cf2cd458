package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// PatientToResponse converts either patient variant to PatientResponse DTO
func PatientToResponse(rec entity.PatientRecord) *dto.PatientResponse {
	if rec == nil {
		return nil
	}

	p := rec.Base()
	response := &dto.PatientResponse{
		Kind:      entity.PatientKind(rec),
		ID:        p.ID,
		FirstName: p.FirstName,
		Surname:   p.Surname,
		Postcode:  p.Postcode,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
	}
	if ins, ok := rec.(*entity.InsuredPatient); ok {
		response.InsurerID = ins.InsurerID
	}
	return response
}

func PatientsToResponses(recs []entity.PatientRecord) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(recs))
	for _, rec := range recs {
		if r := PatientToResponse(rec); r != nil {
			responses = append(responses, *r)
		}
	}
	return responses
}
