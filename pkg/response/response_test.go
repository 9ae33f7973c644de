package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWith_MergesPayloadIntoEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	With(rec, Success200, Payload{"patients": []string{}})

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body["code"] != "success" {
		t.Errorf("expected code success, got %v", body["code"])
	}
	if body["message"] != "Successful operation" {
		t.Errorf("expected canonical message, got %v", body["message"])
	}
	if _, ok := body["patients"]; !ok {
		t.Error("expected patients key merged into envelope")
	}
}

func TestWith_NoContentWritesEmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()

	With(rec, Success204, Payload{"ignored": true})

	if rec.Code != 204 {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body for 204, got %q", rec.Body.String())
	}
}

func TestWithMessage_OverridesCanonicalMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WithMessage(rec, NotFound404, "Patient not found", nil)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body["code"] != "notFound" {
		t.Errorf("expected code notFound, got %v", body["code"])
	}
	if body["message"] != "Patient not found" {
		t.Errorf("expected overridden message, got %v", body["message"])
	}
}

func TestOutcomeTable(t *testing.T) {
	tests := []struct {
		status   Status
		httpCode int
		code     string
	}{
		{Success200, 200, "success"},
		{Success201, 201, "success"},
		{Success204, 204, "success"},
		{InvalidInput422, 422, "invalidInput"},
		{NotFound404, 404, "notFound"},
		{ServerError404, 404, "serverError"},
		{ServerError500, 500, "serverError"},
		{Unauthorized401, 401, "unauthorized"},
	}

	for _, tt := range tests {
		if tt.status.HTTPCode != tt.httpCode {
			t.Errorf("expected HTTP %d for code %q, got %d", tt.httpCode, tt.code, tt.status.HTTPCode)
		}
		if tt.status.Code != tt.code {
			t.Errorf("expected code %q, got %q", tt.code, tt.status.Code)
		}
	}
}
