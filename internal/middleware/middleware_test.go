package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/utils"
)

var testJWT = &config.JWTConfig{Secret: "0123456789abcdef0123", Audience: "authenticated"}

func echoUser(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetUserIDFromContext(r.Context())
	email, _ := utils.GetEmailFromContext(r.Context())
	w.Write([]byte(id + " " + email))
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := GenerateToken("user-1", "sarah@example.com", time.Hour, testJWT)
	if err != nil {
		t.Fatal(err)
	}
	expired, _ := GenerateToken("user-1", "sarah@example.com", -time.Hour, testJWT)
	otherAud, _ := GenerateToken("user-1", "sarah@example.com", time.Hour, &config.JWTConfig{Secret: testJWT.Secret, Audience: "service"})
	wrongKey, _ := GenerateToken("user-1", "sarah@example.com", time.Hour, &config.JWTConfig{Secret: "another-secret-0000000", Audience: "authenticated"})
	noSubject, _ := GenerateToken("", "sarah@example.com", time.Hour, testJWT)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "user-1 sarah@example.com"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token " + valid, http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong audience", "Bearer " + otherAud, http.StatusUnauthorized, ""},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + noSubject, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/itinerary", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(echoUser, testJWT)(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, JWTClaims{
		Email:            "sarah@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Audience: jwt.ClaimStrings{"authenticated"}},
	})
	signed, err := token.SignedString([]byte(testJWT.Secret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(signed, testJWT); err == nil {
		t.Error("HS512 token accepted")
	}
}

type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f fakeRoles) RoleForEmail(_ context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if role, ok := f.roles[email]; ok {
		return role, nil
	}
	return "viewer", nil
}

func TestRequireAdmin(t *testing.T) {
	roles := fakeRoles{roles: map[string]string{"admin@example.com": "admin"}}

	tests := []struct {
		name   string
		email  string
		roles  RoleLookup
		status int
	}{
		{"admin", "admin@example.com", roles, http.StatusOK},
		{"viewer", "sarah@example.com", roles, http.StatusForbidden},
		{"no user", "", roles, http.StatusForbidden},
		{"lookup failure", "admin@example.com", fakeRoles{err: errors.New("down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/activities/1", nil)
			if tt.email != "" {
				req = req.WithContext(utils.WithUser(req.Context(), "user-1", tt.email))
			}
			rec := httptest.NewRecorder()

			RequireAdmin(echoUser, tt.roles, nil)(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestRequireAdminLogsLookupFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "info")

	req := httptest.NewRequest(http.MethodDelete, "/api/activities/1", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	req = req.WithContext(utils.WithUser(req.Context(), "user-1", "admin@example.com"))
	rec := httptest.NewRecorder()

	RequireAdmin(echoUser, fakeRoles{err: errors.New("connection refused")}, log)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	out := buf.String()
	for _, want := range []string{"level=ERROR", "role lookup failed", "email=admin@example.com", `err="connection refused"`, "request_id=req-42"} {
		if !strings.Contains(out, want) {
			t.Errorf("log record %q missing %q", out, want)
		}
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assigned := rec.Header().Get(RequestIDHeader)
	if assigned == "" || assigned != seen {
		t.Errorf("assigned id = %q, handler saw %q", assigned, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("echoed id = %q, want abc-123", got)
	}
}
