package repository

import (
	"context"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
)

// SubjectRepository define el puerto de persistencia para Subject.
type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	GetByID(ctx context.Context, id string) (*entity.Subject, error)
	Update(ctx context.Context, subject *entity.Subject) error
	List(ctx context.Context) ([]*entity.Subject, error)
}
