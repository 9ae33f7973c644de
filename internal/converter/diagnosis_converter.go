package converter

import (
	"time"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
)

func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:          diagnosis.ID,
		Video:       diagnosis.Video,
		Description: diagnosis.Description,
		Suggestion:  diagnosis.Suggestion,
		Date:        diagnosis.Date.Format(time.RFC3339),
		PatientID:   diagnosis.PatientID,
	}
}

func DiagnosesToResponse(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	result := make([]dto.DiagnosisResponse, 0, len(diagnoses))
	for i := range diagnoses {
		result = append(result, *DiagnosisToResponse(&diagnoses[i]))
	}
	return result
}
