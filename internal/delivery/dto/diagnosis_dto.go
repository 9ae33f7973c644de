package dto

// DiagnosisCreateRequest carries the client-writable diagnosis fields.
// PatientID may be omitted: a diagnosis can exist unlinked to any patient.
type DiagnosisCreateRequest struct {
	Video       string  `json:"video" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Suggestion  *string `json:"suggestion"`
	PatientID   *uint   `json:"patient_id"`
}

type DiagnosisResponse struct {
	ID          uint    `json:"id"`
	Video       string  `json:"video"`
	Description string  `json:"description"`
	Suggestion  *string `json:"suggestion"`
	Date        string  `json:"date"`
	PatientID   *uint   `json:"patient_id"`
}
