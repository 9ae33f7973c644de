package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/delivery/http/middleware"
	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/response"
	"medical-records-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Create requires authentication; the owning doctor is taken from the token
// subject, never from the request body.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.WithMessage(w, response.Unauthorized401, "Invalid token", nil)
		return
	}

	var req dto.PatientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"errors": h.validator.FormatValidationErrors(err)})
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		// The source API degraded every create failure to 422.
		response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success201, response.Payload{"patient": patient})
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.With(w, response.InvalidInput422, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"patients": patients})
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.WithMessage(w, response.NotFound404, "Patient not found", nil)
			return
		}
		response.With(w, response.InvalidInput422, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"patient": patient})
}

// Update handles PUT: a merge of present fields with no doctor existence
// check on a changed doctor_id.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	var req dto.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"errors": h.validator.FormatValidationErrors(err)})
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.WithMessage(w, response.NotFound404, "Patient not found", nil)
		default:
			response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		}
		return
	}

	response.With(w, response.Success200, response.Payload{"patient": patient})
}

// PartialUpdate handles PATCH: the same merge, but a supplied doctor_id must
// reference an existing doctor.
func (h *PatientHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	var req dto.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"errors": h.validator.FormatValidationErrors(err)})
		return
	}

	patient, err := h.patientUsecase.PartialUpdate(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.WithMessage(w, response.NotFound404, "Patient not found", nil)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.WithMessage(w, response.NotFound404, "Doctor not found", nil)
		case errors.Is(err, usecase.ErrEmailTaken):
			response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		default:
			response.With(w, response.ServerError500, nil)
		}
		return
	}

	response.With(w, response.Success200, response.Payload{"patient": patient})
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.WithMessage(w, response.ServerError404, "Patient not found", nil)
			return
		}
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success204, nil)
}
