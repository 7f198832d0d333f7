// Package auth contiene el caso de uso de emisión de tokens. La resolución
// del actor en cada petición vive en el middleware HTTP; aquí solo el login.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
	pkgjwt "github.com/academisoft/cronograma-api/pkg/jwt"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida credenciales y emite JWT con el rol en los claims.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg}
}

// Login autentica por username o email. Una cuenta desactivada no puede
// iniciar sesión. Credenciales incorrectas y usuario inexistente devuelven el
// mismo error para no filtrar existencia de cuentas.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	u, err := uc.users.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := pkgjwt.Generate(uc.cfg.Secret, u.ID, u.Role, u.FullName, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        u.ID,
			FullName:  u.FullName,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
	}, nil
}
