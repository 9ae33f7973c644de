package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/usecase"

	"github.com/gorilla/mux"
)

type fakeUserUsecase struct {
	searchResp   []dto.PatientResponse
	searchErr    error
	byDoctorResp []dto.PatientResponse
	byDoctorErr  error
}

func (f *fakeUserUsecase) SearchPatients(ctx context.Context, doctorID uint, name string) ([]dto.PatientResponse, error) {
	return f.searchResp, f.searchErr
}

func (f *fakeUserUsecase) GetPatientsByDoctor(ctx context.Context, doctorID uint) ([]dto.PatientResponse, error) {
	return f.byDoctorResp, f.byDoctorErr
}

func TestSearchPatients_MissingParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no params", "/users/search"},
		{"only name", "/users/search?name=jane"},
		{"only doctor", "/users/search?doctor_id=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&fakeUserUsecase{})

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			h.SearchPatients(rec, req)

			if rec.Code != 422 {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
		})
	}
}

func TestSearchPatients_EmptyResultIsOK(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{searchResp: []dto.PatientResponse{}})

	req := httptest.NewRequest("GET", "/users/search?name=ghost&doctor_id=1", nil)
	rec := httptest.NewRecorder()

	h.SearchPatients(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200 for empty search, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	patients, ok := body["patients"].([]interface{})
	if !ok {
		t.Fatalf("expected patients list, got %v", body["patients"])
	}
	if len(patients) != 0 {
		t.Errorf("expected empty list, got %d entries", len(patients))
	}
}

func TestGetPatientsByDoctor_UnknownDoctor(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{byDoctorErr: usecase.ErrDoctorNotFound})

	req := httptest.NewRequest("GET", "/users/999/patients", nil)
	req = mux.SetURLVars(req, map[string]string{"doctor_id": "999"})
	rec := httptest.NewRecorder()

	h.GetPatientsByDoctor(rec, req)

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetPatientsByDoctor_Success(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{
		byDoctorResp: []dto.PatientResponse{{ID: 1, Name: "Jane", DoctorID: 2}},
	})

	req := httptest.NewRequest("GET", "/users/2/patients", nil)
	req = mux.SetURLVars(req, map[string]string{"doctor_id": "2"})
	rec := httptest.NewRecorder()

	h.GetPatientsByDoctor(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
