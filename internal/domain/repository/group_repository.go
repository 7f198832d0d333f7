package repository

import (
	"context"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
)

// GroupRepository define el puerto de persistencia para Group.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	Update(ctx context.Context, group *entity.Group) error
	List(ctx context.Context) ([]*entity.Group, error)
}
