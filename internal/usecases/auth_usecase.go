package usecases

import (
	"context"
	"crypto/subtle"
	"errors"

	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/domain/repositories"
	"start-academy.backend/pkg/crypto"
	"start-academy.backend/pkg/jwt"
	"start-academy.backend/pkg/utils"
)

// AuthUsecase handles admin dashboard login and email/password signup
type AuthUsecase struct {
	userRepo          repositories.UserRepository
	jwtService        *jwt.JWTService
	adminUsername     string
	adminPasswordHash string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	adminUsername string,
	adminPasswordHash string,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:          userRepo,
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// AdminLogin checks the dashboard credentials and returns a signed token.
// Both the username compare and the bcrypt check run on every call so the
// two failure modes are not distinguishable by timing.
func (u *AuthUsecase) AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (string, error) {
	if u.adminPasswordHash == "" {
		return "", domainerrors.ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(u.adminUsername)) == 1
	passwordOK := crypto.CheckPassword(input.Password, u.adminPasswordHash)
	if !usernameOK || !passwordOK {
		return "", domainerrors.ErrInvalidCredentials
	}

	return u.jwtService.GenerateAdminToken(u.adminUsername)
}

// Register creates an email/password account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := utils.NormalizeEmail(input.Email)

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{Email: email, PasswordHash: hash}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
