package response

import (
	"encoding/json"
	"net/http"
)

// Status is a semantic outcome mapped to a fixed (HTTP status, code, message)
// triple. Handlers pick one and attach an optional payload.
type Status struct {
	HTTPCode int
	Code     string
	Message  string
}

// Canonical outcome table.
var (
	Success200      = Status{http.StatusOK, "success", "Successful operation"}
	Success201      = Status{http.StatusCreated, "success", "Object successfully created"}
	Success204      = Status{http.StatusNoContent, "success", "No content"}
	InvalidInput422 = Status{http.StatusUnprocessableEntity, "invalidInput", "Invalid input"}
	NotFound404     = Status{http.StatusNotFound, "notFound", "Resource not found"}
	ServerError404  = Status{http.StatusNotFound, "serverError", "Server error"}
	ServerError500  = Status{http.StatusInternalServerError, "serverError", "Server error"}
	Unauthorized401 = Status{http.StatusUnauthorized, "unauthorized", "Unauthorized"}
)

// Payload carries endpoint-specific keys merged into the envelope body.
type Payload map[string]interface{}

// With writes the envelope {"code": ..., "message": ..., <payload keys>}.
// Payload keys win over the canonical code/message on collision, which lets
// endpoints override the message the way the source API does. A 204 outcome
// writes no body.
func With(w http.ResponseWriter, status Status, value Payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status.HTTPCode)

	if status.HTTPCode == http.StatusNoContent {
		return
	}

	body := map[string]interface{}{
		"code":    status.Code,
		"message": status.Message,
	}
	for k, v := range value {
		body[k] = v
	}

	json.NewEncoder(w).Encode(body)
}

// WithMessage writes the envelope with the canonical message replaced.
func WithMessage(w http.ResponseWriter, status Status, message string, value Payload) {
	merged := Payload{"message": message}
	for k, v := range value {
		merged[k] = v
	}
	With(w, status, merged)
}
