package handler

import (
	"errors"
	"net/http"

	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/response"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// SearchPatients requires both doctor_id and name query parameters and
// matches name as a case-insensitive substring. No match is still a 200
// with an empty list.
func (h *UserHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	rawDoctorID := r.URL.Query().Get("doctor_id")

	if name == "" || rawDoctorID == "" {
		response.WithMessage(w, response.InvalidInput422, "Both doctor_id and name query parameters are required.", nil)
		return
	}

	doctorID, err := parseID(rawDoctorID)
	if err != nil {
		response.With(w, response.InvalidInput422, nil)
		return
	}

	patients, err := h.userUsecase.SearchPatients(r.Context(), doctorID, name)
	if err != nil {
		response.With(w, response.InvalidInput422, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"patients": patients})
}

func (h *UserHandler) GetPatientsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(mux.Vars(r)["doctor_id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	patients, err := h.userUsecase.GetPatientsByDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.WithMessage(w, response.NotFound404, "Doctor not found", nil)
			return
		}
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"patients": patients})
}
