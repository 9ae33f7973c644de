package dto

// PatientCreateRequest carries the client-writable patient fields.
// DoctorID is accepted in the body but always overwritten with the
// authenticated doctor's id before persisting.
type PatientCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            *int   `json:"age" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	MedicalHistory string `json:"medical_history"`
	Email          string `json:"email" validate:"required,email"`
	DoctorID       uint   `json:"doctor_id"`
	Status         string `json:"status"`
}

// PatientUpdateRequest is shared by PUT and PATCH; only fields present in
// the body are applied (partial merge, both verbs).
type PatientUpdateRequest struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	MedicalHistory *string `json:"medical_history"`
	Email          *string `json:"email" validate:"omitempty,email"`
	DoctorID       *uint   `json:"doctor_id"`
	Status         *string `json:"status"`
}

type PatientResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	Email          string `json:"email"`
	Created        string `json:"created"`
	DoctorID       uint   `json:"doctor_id"`
	Status         string `json:"status"`
}
