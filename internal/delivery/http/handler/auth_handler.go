package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/response"
	"medical-records-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register creates a doctor account. The 201 payload dumps the stored row,
// bcrypt hash included, matching the source API.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": "Missing required fields"})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": "Missing required fields"})
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success201, response.Payload{"user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": "Missing required fields"})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": "Missing required fields"})
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.With(w, response.ServerError404, response.Payload{"error": "User not found"})
		case errors.Is(err, usecase.ErrInvalidPassword):
			response.With(w, response.Unauthorized401, response.Payload{"error": "Invalid password"})
		default:
			response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		}
		return
	}

	response.WithMessage(w, response.Success201, fmt.Sprintf("Logged in as %s", result.Username), response.Payload{
		"access_token": result.AccessToken,
		"id":           result.UserID,
	})
}
