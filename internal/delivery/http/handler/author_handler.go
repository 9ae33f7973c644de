package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/usecase"
	"medical-records-backend/pkg/response"
	"medical-records-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthorHandler struct {
	authorUsecase usecase.AuthorUsecase
	validator     *validator.CustomValidator
}

func NewAuthorHandler(authorUsecase usecase.AuthorUsecase, validator *validator.CustomValidator) *AuthorHandler {
	return &AuthorHandler{
		authorUsecase: authorUsecase,
		validator:     validator,
	}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorUsecase.List(r.Context())
	if err != nil {
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"authors": authors})
}

// Get answers 200 with a null author for an unknown id instead of 404; the
// patient and diagnosis lookups behave differently on purpose.
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	author, err := h.authorUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"author": author})
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthorCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"errors": h.validator.FormatValidationErrors(err)})
		return
	}

	author, err := h.authorUsecase.Create(r.Context(), &req)
	if err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"error": err.Error()})
		return
	}

	response.With(w, response.Success201, response.Payload{"author": author})
}

func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	var req dto.AuthorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithMessage(w, response.InvalidInput422, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.With(w, response.InvalidInput422, response.Payload{"errors": h.validator.FormatValidationErrors(err)})
		return
	}

	author, err := h.authorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		// The source API never handled a missing author on update; it
		// surfaced as an unhandled server error and still does.
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success200, response.Payload{"author": author})
}

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.With(w, response.NotFound404, nil)
		return
	}

	if err := h.authorUsecase.Delete(r.Context(), id); err != nil {
		response.With(w, response.ServerError500, nil)
		return
	}

	response.With(w, response.Success204, nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
