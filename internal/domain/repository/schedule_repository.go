package repository

import (
	"context"
	"time"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
)

// ScheduleQuery es el predicado normalizado que produce el compilador de
// filtros de reportes: igualdades opcionales más un rango de fechas opcional
// e inclusivo. Un campo nil no restringe.
type ScheduleQuery struct {
	TeacherID *string
	SubjectID *string
	GroupID   *string
	Estado    *string
	Modalidad *string
	From      *time.Time
	To        *time.Time
}

// SchedulePatch describe una actualización parcial: solo los campos no nulos
// se escriben. Para Aula y Observaciones un puntero a string vacío limpia el
// campo.
type SchedulePatch struct {
	Fecha         *time.Time
	HoraInicio    *int
	HoraFin       *int
	Modalidad     *string
	Aula          *string
	TeacherID     *string
	SubjectID     *string
	GroupID       *string
	Observaciones *string
	Estado        *string
}

// Empty indica si el parche no toca ningún campo.
func (p SchedulePatch) Empty() bool {
	return p.Fecha == nil && p.HoraInicio == nil && p.HoraFin == nil &&
		p.Modalidad == nil && p.Aula == nil && p.TeacherID == nil &&
		p.SubjectID == nil && p.GroupID == nil && p.Observaciones == nil &&
		p.Estado == nil
}

// ScheduleRepository define el puerto de persistencia para Schedule.
// Las lecturas devuelven la proyección denormalizada (nombre del docente,
// nombre y código de la materia, nombre del grupo).
type ScheduleRepository interface {
	Create(ctx context.Context, s *entity.Schedule) error
	GetByID(ctx context.Context, id string) (*entity.Schedule, error)
	// List devuelve todos los cronogramas ordenados por fecha descendente.
	List(ctx context.Context) ([]*entity.Schedule, error)
	// ListByTeacher restringe el listado a un docente (endurecimiento
	// servidor para el rol DOCENTE).
	ListByTeacher(ctx context.Context, teacherID string) ([]*entity.Schedule, error)
	Update(ctx context.Context, id string, patch SchedulePatch) error
	// Complete marca el cronograma como cumplido de forma atómica: solo
	// escribe filas en estado no terminal (UPDATE ... WHERE estado IN
	// (PROGRAMADO, EN_CURSO)). Devuelve false si el registro ya estaba en
	// COMPLETADO o CANCELADO cuando llegó la escritura.
	Complete(ctx context.Context, id string, at time.Time) (bool, error)
	// Delete borra definitivamente (hard delete).
	Delete(ctx context.Context, id string) error
	// Query ejecuta el predicado compilado de reportes; mismo orden y
	// proyección que List.
	Query(ctx context.Context, q ScheduleQuery) ([]*entity.Schedule, error)
}
