package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
)

const (
	accessKind  = "access"
	refreshKind = "refresh"
)

// TokenRegistry records which issued tokens are still live.
type TokenRegistry interface {
	Register(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	CreateOperator(ctx context.Context, req *dto.CreateOperatorRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService *jwt.JWTService
	tokens     TokenRegistry
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *jwt.JWTService,
	tokens TokenRegistry,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		tokens:     tokens,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user.ID, user.Email, roleName(user))
}

// Logout revokes the access token in use and, when given, its refresh token.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	if err := u.tokens.Revoke(ctx, accessKind, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	if refreshTokenID == "" {
		return nil
	}
	if err := u.tokens.Revoke(ctx, refreshKind, userID, refreshTokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}
	return nil
}

// RefreshToken trades a live refresh token for a new token pair. The old
// refresh token is revoked so it cannot be replayed.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokens.Exists(ctx, refreshKind, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrInvalidToken
	}

	if err := u.tokens.Revoke(ctx, refreshKind, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user.ID, user.Email, roleName(user))
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// CreateOperator adds an operator account with a bcrypt-hashed password.
func (u *authUsecase) CreateOperator(ctx context.Context, req *dto.CreateOperatorRequest) (*dto.UserResponse, error) {
	role, err := u.roleRepo.FindByName(ctx, req.Role)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
		IsActive: &active,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	user.Role = *role

	u.log.WithFields(logrus.Fields{"email": user.Email, "role": role.RoleName}).Info("Operator created")

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Register(ctx, accessKind, userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Register(ctx, refreshKind, userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func roleName(user *entity.User) string {
	return converter.UserToResponse(user).Role
}
