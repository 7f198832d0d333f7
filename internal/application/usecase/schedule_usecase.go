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

// Actor es el usuario autenticado que ejecuta una operación, ya resuelto por
// el middleware de autenticación (id + rol extraídos del token).
type Actor struct {
	ID   string
	Role string
}

// ScheduleUseCase orquesta el ciclo de vida de los cronogramas: validación de
// la ventana horaria, política de roles y máquina de estados.
type ScheduleUseCase struct {
	schedules repository.ScheduleRepository
	now       func() time.Time
}

// NewScheduleUseCase construye el caso de uso con el puerto de persistencia.
func NewScheduleUseCase(schedules repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{schedules: schedules, now: time.Now}
}

// authorize verifica autenticación y política. La autenticación se comprueba
// antes de consultar la tabla: sin actor no hay 403, hay 401.
func authorize(actor Actor, action policy.Action) error {
	if actor.ID == "" {
		return domain.ErrUnauthorized
	}
	if !policy.Can(actor.Role, action) {
		return domain.ErrForbidden
	}
	return nil
}

// Create registra un nuevo cronograma en estado PROGRAMADO. El estado inicial
// no es elegible por el llamador; cumplido nace en false.
func (uc *ScheduleUseCase) Create(ctx context.Context, actor Actor, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleCreate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := entity.ValidateTimeWindow(*req.HoraInicio, *req.HoraFin); err != nil {
		return nil, validation.NewError("hora_fin", err.Error())
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	s := &entity.Schedule{
		ID:            uuid.NewString(),
		Fecha:         fecha,
		HoraInicio:    *req.HoraInicio,
		HoraFin:       *req.HoraFin,
		Modalidad:     req.Modalidad,
		Aula:          trimmed(req.Aula),
		TeacherID:     req.TeacherID,
		SubjectID:     req.SubjectID,
		GroupID:       req.GroupID,
		Observaciones: trimmed(req.Observaciones),
		Estado:        entity.EstadoProgramado,
		Cumplido:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.schedules.Create(ctx, s); err != nil {
		return nil, err
	}
	// Relectura para devolver la proyección denormalizada (nombres de
	// docente, materia y grupo).
	created, err := uc.schedules.GetByID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	return scheduleToResponse(created), nil
}

// Update aplica una actualización parcial. La ventana horaria siempre se
// revalida contra el registro almacenado: un parche que toca solo uno de los
// dos extremos no puede dejar una ventana inconsistente.
func (uc *ScheduleUseCase) Update(ctx context.Context, actor Actor, id string, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleUpdate); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	patch := repository.SchedulePatch{
		HoraInicio:    req.HoraInicio,
		HoraFin:       req.HoraFin,
		Modalidad:     req.Modalidad,
		Aula:          trimmed(req.Aula),
		TeacherID:     req.TeacherID,
		SubjectID:     req.SubjectID,
		GroupID:       req.GroupID,
		Observaciones: trimmed(req.Observaciones),
	}
	if req.Fecha != nil {
		fecha, err := parseFecha(*req.Fecha)
		if err != nil {
			return nil, err
		}
		patch.Fecha = &fecha
	}
	if req.Estado != nil && *req.Estado != existing.Estado {
		if !entity.CanTransition(existing.Estado, *req.Estado) {
			return nil, domain.ErrConflict
		}
		patch.Estado = req.Estado
	}

	// Ventana resultante = parche sobre lo almacenado.
	inicio, fin := existing.HoraInicio, existing.HoraFin
	if req.HoraInicio != nil {
		inicio = *req.HoraInicio
	}
	if req.HoraFin != nil {
		fin = *req.HoraFin
	}
	if err := entity.ValidateTimeWindow(inicio, fin); err != nil {
		return nil, validation.NewError("hora_fin", err.Error())
	}

	if !patch.Empty() {
		if err := uc.schedules.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}
	updated, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return scheduleToResponse(updated), nil
}

// Complete marca la jornada como cumplida: cumplido=true, estado=COMPLETADO y
// fecha_cumplimiento=ahora. Un DOCENTE solo puede cumplir sus propias
// jornadas; reintentar sobre un cronograma ya completado es un error.
func (uc *ScheduleUseCase) Complete(ctx context.Context, actor Actor, id string) (*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleComplete); err != nil {
		return nil, err
	}
	existing, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleDocente && existing.TeacherID != actor.ID {
		return nil, domain.ErrForbidden
	}
	switch existing.Estado {
	case entity.EstadoCompletado:
		return nil, domain.ErrAlreadyCompleted
	case entity.EstadoCancelado:
		return nil, domain.ErrConflict
	}

	ok, err := uc.schedules.Complete(ctx, id, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if !ok {
		// Carrera con otra mutación concurrente: el UPDATE condicional no
		// afectó filas porque el registro salió del estado no terminal
		// después de la lectura. Releemos para responder el conflicto real.
		current, err := uc.schedules.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		switch {
		case current == nil:
			return nil, domain.ErrNotFound
		case current.Estado == entity.EstadoCancelado:
			return nil, domain.ErrConflict
		default:
			return nil, domain.ErrAlreadyCompleted
		}
	}
	completed, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		return nil, domain.ErrNotFound
	}
	return scheduleToResponse(completed), nil
}

// Delete borra definitivamente un cronograma y devuelve el registro borrado.
func (uc *ScheduleUseCase) Delete(ctx context.Context, actor Actor, id string) (*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleDelete); err != nil {
		return nil, err
	}
	existing, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.schedules.Delete(ctx, id); err != nil {
		return nil, err
	}
	return scheduleToResponse(existing), nil
}

// GetByID devuelve un cronograma. Un DOCENTE solo ve los suyos.
func (uc *ScheduleUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	s, err := uc.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleDocente && s.TeacherID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return scheduleToResponse(s), nil
}

// List devuelve los cronogramas ordenados por fecha descendente. Para un
// DOCENTE el filtrado por docente se aplica en el servidor, no solo en la UI.
func (uc *ScheduleUseCase) List(ctx context.Context, actor Actor) ([]*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionScheduleRead); err != nil {
		return nil, err
	}
	var (
		list []*entity.Schedule
		err  error
	)
	if actor.Role == entity.RoleDocente {
		list, err = uc.schedules.ListByTeacher(ctx, actor.ID)
	} else {
		list, err = uc.schedules.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, scheduleToResponse(s))
	}
	return out, nil
}

// parseFecha interpreta una fecha YYYY-MM-DD y la normaliza a medianoche UTC.
func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, validation.NewError("fecha", "formato de fecha inválido, use YYYY-MM-DD")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// trimmed recorta espacios preservando la distinción presente/ausente.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func scheduleToResponse(s *entity.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:                s.ID,
		Fecha:             s.Fecha.Format("2006-01-02"),
		HoraInicio:        s.HoraInicio,
		HoraFin:           s.HoraFin,
		Modalidad:         s.Modalidad,
		Aula:              s.Aula,
		TeacherID:         s.TeacherID,
		TeacherName:       s.TeacherName,
		SubjectID:         s.SubjectID,
		SubjectName:       s.SubjectName,
		SubjectCode:       s.SubjectCode,
		GroupID:           s.GroupID,
		GroupName:         s.GroupName,
		Observaciones:     s.Observaciones,
		Estado:            s.Estado,
		Cumplido:          s.Cumplido,
		FechaCumplimiento: s.FechaCumplimiento,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
