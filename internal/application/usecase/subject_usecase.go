package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/policy"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// SubjectUseCase reglas de negocio para materias.
type SubjectUseCase struct {
	repo repository.SubjectRepository
	now  func() time.Time
}

// NewSubjectUseCase construye el caso de uso.
func NewSubjectUseCase(repo repository.SubjectRepository) *SubjectUseCase {
	return &SubjectUseCase{repo: repo, now: time.Now}
}

// Create registra una materia; el código debe ser único (violación → conflicto).
func (uc *SubjectUseCase) Create(ctx context.Context, actor Actor, req dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	if err := authorize(actor, policy.ActionSubjectCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	s := &entity.Subject{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Credits:   req.Credits,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return subjectToResponse(s), nil
}

// Update actualización parcial de una materia.
func (uc *SubjectUseCase) Update(ctx context.Context, actor Actor, id string, req dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	if err := authorize(actor, policy.ActionSubjectCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Credits != nil {
		s.Credits = *req.Credits
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	s.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return subjectToResponse(s), nil
}

// GetByID obtiene una materia (cualquier rol autenticado).
func (uc *SubjectUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.SubjectResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return subjectToResponse(s), nil
}

// List devuelve todas las materias (cualquier rol autenticado).
func (uc *SubjectUseCase) List(ctx context.Context, actor Actor) ([]*dto.SubjectResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SubjectResponse, 0, len(list))
	for _, s := range list {
		out = append(out, subjectToResponse(s))
	}
	return out, nil
}

func subjectToResponse(s *entity.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		Credits:   s.Credits,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
