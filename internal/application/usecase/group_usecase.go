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

// GroupUseCase reglas de negocio para grupos académicos.
type GroupUseCase struct {
	repo repository.GroupRepository
	now  func() time.Time
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(repo repository.GroupRepository) *GroupUseCase {
	return &GroupUseCase{repo: repo, now: time.Now}
}

// Create registra un grupo; el código debe ser único (violación → conflicto).
func (uc *GroupUseCase) Create(ctx context.Context, actor Actor, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if err := authorize(actor, policy.ActionGroupCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	g := &entity.Group{
		ID:          uuid.NewString(),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		Semester:    req.Semester,
		Year:        req.Year,
		MaxStudents: req.MaxStudents,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return groupToResponse(g), nil
}

// Update actualización parcial de un grupo.
func (uc *GroupUseCase) Update(ctx context.Context, actor Actor, id string, req dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	if err := authorize(actor, policy.ActionGroupCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		g.Name = strings.TrimSpace(*req.Name)
	}
	if req.Semester != nil {
		g.Semester = *req.Semester
	}
	if req.Year != nil {
		g.Year = *req.Year
	}
	if req.MaxStudents != nil {
		g.MaxStudents = *req.MaxStudents
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}
	g.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return groupToResponse(g), nil
}

// GetByID obtiene un grupo (cualquier rol autenticado).
func (uc *GroupUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.GroupResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return groupToResponse(g), nil
}

// List devuelve todos los grupos (cualquier rol autenticado).
func (uc *GroupUseCase) List(ctx context.Context, actor Actor) ([]*dto.GroupResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, groupToResponse(g))
	}
	return out, nil
}

func groupToResponse(g *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:          g.ID,
		Code:        g.Code,
		Name:        g.Name,
		Semester:    g.Semester,
		Year:        g.Year,
		MaxStudents: g.MaxStudents,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
