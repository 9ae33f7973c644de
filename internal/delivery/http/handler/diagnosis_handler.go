package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/response"
	"medical-records-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DiagnosisCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": "Missing required fields: video or description"})
		return
	}

	diagnosis, err := h.diagnosisUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.With(w, response.ServerError404, response.Payload{"error": "Patient not found"})
			return
		}
		response.With(w, response.ServerError500, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success201, response.Payload{"diagnosis": diagnosis})
}

// List returns every diagnosis; an empty table is reported as not-found,
// unlike the author and patient listings.
func (h *DiagnosisHandler) List(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.diagnosisUsecase.List(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoDiagnoses) {
			response.With(w, response.ServerError404, response.Payload{"error": "No diagnoses found"})
			return
		}
		response.With(w, response.ServerError500, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success200, response.Payload{"diagnoses": diagnoses})
}

func (h *DiagnosisHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	diagnoses, err := h.diagnosisUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoDiagnoses) {
			response.With(w, response.ServerError404, response.Payload{"error": "No diagnoses found for the given patient_id"})
			return
		}
		response.With(w, response.ServerError500, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success200, response.Payload{"diagnoses": diagnoses})
}
