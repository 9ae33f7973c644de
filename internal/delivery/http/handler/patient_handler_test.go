package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/delivery/http/middleware"
	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type fakePatientUsecase struct {
	createResp      *dto.PatientResponse
	createErr       error
	createdByDoctor uint
	getResp         *dto.PatientResponse
	getErr          error
	updateResp      *dto.PatientResponse
	updateErr       error
	partialResp     *dto.PatientResponse
	partialErr      error
	deleteErr       error
}

func (f *fakePatientUsecase) Create(ctx context.Context, doctorID uint, req *dto.PatientCreateRequest) (*dto.PatientResponse, error) {
	f.createdByDoctor = doctorID
	return f.createResp, f.createErr
}

func (f *fakePatientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	return []dto.PatientResponse{}, nil
}

func (f *fakePatientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakePatientUsecase) Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakePatientUsecase) PartialUpdate(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	return f.partialResp, f.partialErr
}

func (f *fakePatientUsecase) Delete(ctx context.Context, id uint) error {
	return f.deleteErr
}

const validPatientBody = `{"name":"Jane","age":41,"gender":"female","email":"jane@example.com","doctor_id":99}`

func TestCreatePatient_WithoutAuthContext(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest("POST", "/patients", strings.NewReader(validPatientBody))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != 401 {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreatePatient_DoctorIDComesFromToken(t *testing.T) {
	fake := &fakePatientUsecase{createResp: &dto.PatientResponse{ID: 1, DoctorID: 7}}
	h := NewPatientHandler(fake, validator.NewValidator())

	req := httptest.NewRequest("POST", "/patients", strings.NewReader(validPatientBody))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uint(7))
	rec := httptest.NewRecorder()

	h.Create(rec, req.WithContext(ctx))

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	// body claimed doctor 99; the token subject must win
	if fake.createdByDoctor != 7 {
		t.Errorf("expected doctor id 7 from token, got %d", fake.createdByDoctor)
	}
}

func TestCreatePatient_InvalidEmail(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest("POST", "/patients", strings.NewReader(`{"name":"Jane","age":41,"gender":"female","email":"nope"}`))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uint(7))
	rec := httptest.NewRecorder()

	h.Create(rec, req.WithContext(ctx))

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{getErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	req := httptest.NewRequest("GET", "/patients/999", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "999"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Patient not found" {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestPartialUpdatePatient_UnknownDoctor(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{partialErr: usecase.ErrDoctorNotFound}, validator.NewValidator())

	req := httptest.NewRequest("PATCH", "/patients/1", strings.NewReader(`{"doctor_id":12345}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()

	h.PartialUpdate(rec, req)

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Doctor not found" {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestUpdatePatient_UnknownDoctorAccepted(t *testing.T) {
	// PUT does not re-validate doctor_id; the fake mirrors that by
	// succeeding where PATCH would fail.
	h := NewPatientHandler(&fakePatientUsecase{
		updateResp: &dto.PatientResponse{ID: 1, DoctorID: 12345},
	}, validator.NewValidator())

	req := httptest.NewRequest("PUT", "/patients/1", strings.NewReader(`{"doctor_id":12345}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDeletePatient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"found", nil, 204},
		{"missing", usecase.ErrPatientNotFound, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPatientHandler(&fakePatientUsecase{deleteErr: tt.err}, validator.NewValidator())

			req := httptest.NewRequest("DELETE", "/patients/1", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "1"})
			rec := httptest.NewRecorder()

			h.Delete(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode == 204 && rec.Body.Len() != 0 {
				t.Errorf("expected empty body on delete, got %q", rec.Body.String())
			}
		})
	}
}
