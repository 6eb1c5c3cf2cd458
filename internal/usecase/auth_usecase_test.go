package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-records/config"
	"clinic-records/internal/delivery/dto"
	"clinic-records/pkg/jwt"

	"github.com/sirupsen/logrus/hooks/test"
)

func newAuthUsecase() (AuthUsecase, *mockUserRepo, *mockTokens, *jwt.JWTService) {
	log, _ := test.NewNullLogger()
	users := newMockUserRepo()
	tokens := newMockTokens()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	return NewAuthUsecase(log, users, mockRoleRepo{}, jwtService, tokens), users, tokens, jwtService
}

func createClerk(t *testing.T, uc AuthUsecase) *dto.UserResponse {
	t.Helper()
	user, err := uc.CreateOperator(context.Background(), &dto.CreateOperatorRequest{
		Email:    "clerk@clinic.test",
		Password: "correct horse",
		FullName: "Front Desk",
		Role:     "clerk",
	})
	if err != nil {
		t.Fatalf("CreateOperator: %v", err)
	}
	return user
}

func TestAuthUsecase_CreateOperator(t *testing.T) {
	ctx := context.Background()
	uc, users, _, _ := newAuthUsecase()

	user := createClerk(t, uc)
	if user.Role != "clerk" {
		t.Errorf("Role = %q, want clerk", user.Role)
	}
	if stored := users.byEmail["clerk@clinic.test"]; stored.Password == "correct horse" {
		t.Error("password stored in clear text")
	}

	_, err := uc.CreateOperator(ctx, &dto.CreateOperatorRequest{Email: "clerk@clinic.test", Password: "x", FullName: "Dup", Role: "clerk"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("duplicate = %v, want ErrEmailAlreadyExists", err)
	}

	_, err = uc.CreateOperator(ctx, &dto.CreateOperatorRequest{Email: "n@clinic.test", Password: "x", FullName: "N", Role: "nurse"})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("unknown role = %v, want ErrRoleNotFound", err)
	}
}

func TestAuthUsecase_LoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	uc, _, tokens, jwtService := newAuthUsecase()
	user := createClerk(t, uc)

	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "clerk@clinic.test", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "nobody@clinic.test", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email = %v, want ErrInvalidCredentials", err)
	}

	pair, err := uc.Login(ctx, &dto.LoginRequest{Email: "clerk@clinic.test", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(tokens.live) != 2 {
		t.Errorf("live tokens = %d, want 2", len(tokens.live))
	}
	access, err := jwtService.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if access.Role != "clerk" || access.UserID != user.ID {
		t.Errorf("claims = %+v", access)
	}

	next, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken}); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("replayed refresh = %v, want ErrTokenRevoked", err)
	}
	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: next.AccessToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token as refresh = %v, want ErrInvalidToken", err)
	}

	nextAccess, _ := jwtService.ValidateToken(next.AccessToken)
	nextRefresh, _ := jwtService.ValidateToken(next.RefreshToken)
	if err := uc.Logout(ctx, user.ID, nextAccess.TokenID, nextRefresh.TokenID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if ok, _ := tokens.Exists(ctx, "access", user.ID, nextAccess.TokenID); ok {
		t.Error("access token still live after logout")
	}
	if ok, _ := tokens.Exists(ctx, "refresh", user.ID, nextRefresh.TokenID); ok {
		t.Error("refresh token still live after logout")
	}
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newAuthUsecase()
	user := createClerk(t, uc)

	got, err := uc.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if got.Email != "clerk@clinic.test" {
		t.Errorf("Email = %q", got.Email)
	}
}
