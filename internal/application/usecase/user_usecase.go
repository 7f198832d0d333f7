package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/policy"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// UserUseCase aplica reglas de negocio para usuarios. No hay borrado físico:
// un usuario se desactiva vía actualización.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// Create registra un usuario con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, actor Actor, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.ActionUserCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	u := &entity.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(req.FullName),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return userToResponse(u), nil
}

// Update aplica una actualización parcial de perfil, rol o estado.
func (uc *UserUseCase) Update(ctx context.Context, actor Actor, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.ActionUserUpdate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if req.FullName != nil {
		u.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	u.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return userToResponse(u), nil
}

// GetByID obtiene un usuario por ID (roles de administración).
func (uc *UserUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.ActionUserUpdate); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return userToResponse(u), nil
}

// List devuelve todos los usuarios (roles de administración).
func (uc *UserUseCase) List(ctx context.Context, actor Actor) ([]*dto.UserResponse, error) {
	if err := authorize(actor, policy.ActionUserUpdate); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

// ListTeachers devuelve los docentes activos para los formularios de
// cronogramas. Cualquier rol autenticado.
func (uc *UserUseCase) ListTeachers(ctx context.Context, actor Actor) ([]*dto.TeacherResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TeacherResponse, 0, len(list))
	for _, u := range list {
		out = append(out, &dto.TeacherResponse{ID: u.ID, FullName: u.FullName})
	}
	return out, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
