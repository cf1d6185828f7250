package auth

import (
	"context"
	"errors"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/auth"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/user"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Role:        string(u.Role),
	}, nil
}
