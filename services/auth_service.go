package services

import (
	"context"
	"errors"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError is a typed service error.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "correo o contraseña incorrectos"
	ErrUserInactive       AuthServiceError = "la cuenta está desactivada"
)

// IAuthService authenticates panel users.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	repo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewUserRepository()}
}

// Authenticate checks the credentials against the stored bcrypt hash.
// Unknown email and bad password return the same error.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrUserInactive
	}
	configslog.SLog.Infof("Inicio de sesión: usuario %d (%s)", user.ID, user.Email)
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
