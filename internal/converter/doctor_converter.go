package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// DoctorToResponse converts either doctor variant to DoctorResponse DTO
func DoctorToResponse(rec entity.DoctorRecord) *dto.DoctorResponse {
	if rec == nil {
		return nil
	}

	d := rec.Base()
	response := &dto.DoctorResponse{
		Kind:        entity.DoctorKind(rec),
		ID:          d.ID,
		FirstName:   d.FirstName,
		Surname:     d.Surname,
		Address:     d.Address,
		Email:       d.Email,
		Affiliation: d.Affiliation,
	}
	if s, ok := rec.(*entity.Specialist); ok {
		response.Specialization = s.Specialization
	}
	return response
}

// DoctorsToResponses converts a slice of doctor records to DoctorResponse DTOs
func DoctorsToResponses(recs []entity.DoctorRecord) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(recs))
	for _, rec := range recs {
		if r := DoctorToResponse(rec); r != nil {
			responses = append(responses, *r)
		}
	}
	return responses
}
