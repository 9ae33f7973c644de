package converter

import (
	"testing"
	"time"

	"medical-records-backend/internal/domain/entity"
)

func TestPatientToResponse(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:             5,
		Name:           "Jane Roe",
		Age:            41,
		Gender:         "female",
		MedicalHistory: "asthma",
		Email:          "jane@example.com",
		Created:        created,
		DoctorID:       2,
		Status:         entity.PatientStatusUnvisited,
	}

	resp := PatientToResponse(patient)

	if resp.ID != 5 || resp.Name != "Jane Roe" || resp.Age != 41 {
		t.Errorf("unexpected mapped fields: %+v", resp)
	}
	if resp.DoctorID != 2 {
		t.Errorf("expected doctor_id 2, got %d", resp.DoctorID)
	}
	if resp.Created != created.Format(time.RFC3339) {
		t.Errorf("expected RFC3339 created, got %q", resp.Created)
	}
	if resp.Status != "unvisited" {
		t.Errorf("expected status unvisited, got %q", resp.Status)
	}
}

func TestPatientToResponse_Nil(t *testing.T) {
	if PatientToResponse(nil) != nil {
		t.Error("expected nil response for nil patient")
	}
}

func TestPatientsToResponse_EmptySliceStaysEmpty(t *testing.T) {
	result := PatientsToResponse(nil)
	if result == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(result) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(result))
	}
}

func TestDiagnosisToResponse_NullableFields(t *testing.T) {
	d := &entity.Diagnosis{
		ID:          1,
		Video:       "/videos/1.mp4",
		Description: "obs",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := DiagnosisToResponse(d)

	if resp.Suggestion != nil {
		t.Errorf("expected nil suggestion, got %v", *resp.Suggestion)
	}
	if resp.PatientID != nil {
		t.Errorf("expected nil patient_id, got %v", *resp.PatientID)
	}
}
