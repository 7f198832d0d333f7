package repository

import (
	"context"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByLogin busca por username o email (para login).
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	// ListTeachers devuelve los usuarios activos con rol DOCENTE.
	ListTeachers(ctx context.Context) ([]*entity.User, error)
}
