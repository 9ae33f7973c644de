package converter

import (
	"time"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO. The
// server-assigned timestamp is emitted as an RFC 3339 string.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		MedicalHistory: patient.MedicalHistory,
		Email:          patient.Email,
		Created:        patient.Created.Format(time.RFC3339),
		DoctorID:       patient.DoctorID,
		Status:         patient.Status,
	}
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	result := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		result = append(result, *PatientToResponse(&patients[i]))
	}
	return result
}
