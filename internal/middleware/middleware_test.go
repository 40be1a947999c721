package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"game_wheel/internal/model"
	"game_wheel/pkg/token"
)

var secret = []byte("test-secret")

func protected(t *testing.T) http.Handler {
	t.Helper()
	return Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Subject != model.ModeratorSubject {
			t.Errorf("Expected moderator claims in context")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuth(t *testing.T) {
	valid, err := token.GenerateAccessToken(model.ModeratorSubject, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	expired, _ := token.GenerateAccessToken(model.ModeratorSubject, secret, -time.Minute)
	foreign, _ := token.GenerateAccessToken(model.ModeratorSubject, []byte("other"), time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + valid, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"no scheme", valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected(t).ServeHTTP(w, r)

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) || fields["path"] != "/games" {
		t.Errorf("Unexpected log fields: %v", fields)
	}
}
