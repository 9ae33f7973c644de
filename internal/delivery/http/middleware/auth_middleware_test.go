package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medical-records-backend/config"
	"medical-records-backend/pkg/jwt"
)

func newAuthMiddleware() *AuthMiddleware {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Minute,
	})
	// the Redis revocation check is only reached with a valid token,
	// which these cases never present
	return NewAuthMiddleware(jwtService, nil)
}

func TestAuthenticate_RejectsBeforeHandler(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAuthMiddleware()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest("POST", "/patients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != 401 {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if called {
				t.Error("expected handler not to be called")
			}
		})
	}
}

func TestAuthenticate_RejectsExpiredToken(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})
	m := NewAuthMiddleware(jwtService, nil)

	token, _, err := jwtService.GenerateAccessToken(1, "dr1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest("POST", "/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected handler not to be called")
	})).ServeHTTP(rec, req)

	if rec.Code != 401 {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
