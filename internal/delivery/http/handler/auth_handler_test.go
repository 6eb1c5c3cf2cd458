package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-records/config"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/jwt"
	"clinic-records/pkg/validator"

	"github.com/google/uuid"
)

type fakeAuth struct {
	loggedOut []string
	created   *dto.CreateOperatorRequest
}

func (f *fakeAuth) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Password != "correct horse" {
		return nil, usecase.ErrInvalidCredentials
	}
	return &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60}, nil
}

func (f *fakeAuth) Logout(_ context.Context, _ uuid.UUID, accessTokenID, refreshTokenID string) error {
	f.loggedOut = append(f.loggedOut, accessTokenID, refreshTokenID)
	return nil
}

func (f *fakeAuth) RefreshToken(context.Context, *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrTokenRevoked
}

func (f *fakeAuth) GetCurrentUser(_ context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id, Email: "clerk@clinic.test"}, nil
}

func (f *fakeAuth) CreateOperator(_ context.Context, req *dto.CreateOperatorRequest) (*dto.UserResponse, error) {
	if f.created != nil && f.created.Email == req.Email {
		return nil, usecase.ErrEmailAlreadyExists
	}
	f.created = req
	return &dto.UserResponse{ID: uuid.New(), Email: req.Email, Role: req.Role}, nil
}

func newAuthHandler() (*AuthHandler, *fakeAuth, *jwt.JWTService) {
	auth := &fakeAuth{}
	svc := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	return NewAuthHandler(auth, validator.NewValidator(), svc), auth, svc
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	h, _, _ := newAuthHandler()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"ok", `{"email":"clerk@clinic.test","password":"correct horse"}`, http.StatusOK},
		{"wrong password", `{"email":"clerk@clinic.test","password":"nope"}`, http.StatusUnauthorized},
		{"bad email", `{"email":"clerk","password":"x"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := post(h.Login, tt.body); rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestAuthHandler_RefreshRevoked(t *testing.T) {
	h, _, _ := newAuthHandler()
	if rec := post(h.RefreshToken, `{"refresh_token":"r"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h, auth, svc := newAuthHandler()
	userID := uuid.New()
	refresh, refreshID, _ := svc.GenerateRefreshToken(userID, "clerk@clinic.test", "clerk")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"refresh_token":"`+refresh+`"}`))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "access-1")
	rec := httptest.NewRecorder()
	h.Logout(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(auth.loggedOut) != 2 || auth.loggedOut[0] != "access-1" || auth.loggedOut[1] != refreshID {
		t.Errorf("revoked = %v", auth.loggedOut)
	}

	rec = post(h.Logout, `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without context = %d, want 401", rec.Code)
	}
}

func TestAuthHandler_CreateOperator(t *testing.T) {
	h, _, _ := newAuthHandler()
	body := `{"email":"admin@clinic.test","password":"long enough","full_name":"Ada Admin","role":"admin"}`

	if rec := post(h.CreateOperator, body); rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := post(h.CreateOperator, body); rec.Code != http.StatusConflict {
		t.Errorf("duplicate = %d, want 409", rec.Code)
	}
	bad := `{"email":"n@clinic.test","password":"long enough","full_name":"Nurse","role":"nurse"}`
	if rec := post(h.CreateOperator, bad); rec.Code != http.StatusBadRequest {
		t.Errorf("bad role = %d, want 400", rec.Code)
	}
}
