package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// psql builder con placeholders $1, $2, ... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ScheduleRepo implementación del puerto ScheduleRepository sobre PostgreSQL.
// Las lecturas hacen join con users/subjects/groups para la proyección
// denormalizada; la serialización de mutaciones concurrentes sobre una misma
// fila se delega al locking por fila del motor.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository construye el adaptador de persistencia para cronogramas.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// scheduleColumns columnas de lectura, incluida la proyección de las relaciones.
const scheduleColumns = `
	s.id, s.fecha, s.hora_inicio, s.hora_fin, s.modalidad, s.aula,
	s.teacher_id, s.subject_id, s.group_id, s.observaciones,
	s.estado, s.cumplido, s.fecha_cumplimiento, s.created_at, s.updated_at,
	t.full_name, m.name, m.code, g.name`

const scheduleJoins = `
	FROM schedules s
	JOIN users t    ON t.id = s.teacher_id
	JOIN subjects m ON m.id = s.subject_id
	JOIN groups g   ON g.id = s.group_id`

func scanSchedule(row pgx.Row) (*entity.Schedule, error) {
	var s entity.Schedule
	err := row.Scan(
		&s.ID, &s.Fecha, &s.HoraInicio, &s.HoraFin, &s.Modalidad, &s.Aula,
		&s.TeacherID, &s.SubjectID, &s.GroupID, &s.Observaciones,
		&s.Estado, &s.Cumplido, &s.FechaCumplimiento, &s.CreatedAt, &s.UpdatedAt,
		&s.TeacherName, &s.SubjectName, &s.SubjectCode, &s.GroupName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo cronograma. Una referencia inexistente a docente,
// materia o grupo se traduce a domain.ErrForeignKey.
func (r *ScheduleRepo) Create(ctx context.Context, s *entity.Schedule) error {
	query := `
		INSERT INTO schedules
			(id, fecha, hora_inicio, hora_fin, modalidad, aula,
			 teacher_id, subject_id, group_id, observaciones,
			 estado, cumplido, fecha_cumplimiento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Fecha, s.HoraInicio, s.HoraFin, s.Modalidad, s.Aula,
		s.TeacherID, s.SubjectID, s.GroupID, s.Observaciones,
		s.Estado, s.Cumplido, s.FechaCumplimiento, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un cronograma con su proyección; nil si no existe.
func (r *ScheduleRepo) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	query := "SELECT" + scheduleColumns + scheduleJoins + " WHERE s.id = $1"
	s, err := scanSchedule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}
	return s, nil
}

// List devuelve todos los cronogramas ordenados por fecha descendente.
func (r *ScheduleRepo) List(ctx context.Context) ([]*entity.Schedule, error) {
	query := "SELECT" + scheduleColumns + scheduleJoins + " ORDER BY s.fecha DESC, s.hora_inicio"
	return r.queryMany(ctx, query)
}

// ListByTeacher restringe el listado a los cronogramas de un docente.
func (r *ScheduleRepo) ListByTeacher(ctx context.Context, teacherID string) ([]*entity.Schedule, error) {
	query := "SELECT" + scheduleColumns + scheduleJoins +
		" WHERE s.teacher_id = $1 ORDER BY s.fecha DESC, s.hora_inicio"
	return r.queryMany(ctx, query, teacherID)
}

// Update aplica un parche parcial construyendo el UPDATE dinámicamente: solo
// las columnas presentes en el parche se escriben.
func (r *ScheduleRepo) Update(ctx context.Context, id string, patch repository.SchedulePatch) error {
	upd := psql.Update("schedules").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if patch.Fecha != nil {
		upd = upd.Set("fecha", *patch.Fecha)
	}
	if patch.HoraInicio != nil {
		upd = upd.Set("hora_inicio", *patch.HoraInicio)
	}
	if patch.HoraFin != nil {
		upd = upd.Set("hora_fin", *patch.HoraFin)
	}
	if patch.Modalidad != nil {
		upd = upd.Set("modalidad", *patch.Modalidad)
	}
	if patch.Aula != nil {
		upd = upd.Set("aula", *patch.Aula)
	}
	if patch.TeacherID != nil {
		upd = upd.Set("teacher_id", *patch.TeacherID)
	}
	if patch.SubjectID != nil {
		upd = upd.Set("subject_id", *patch.SubjectID)
	}
	if patch.GroupID != nil {
		upd = upd.Set("group_id", *patch.GroupID)
	}
	if patch.Observaciones != nil {
		upd = upd.Set("observaciones", *patch.Observaciones)
	}
	if patch.Estado != nil {
		upd = upd.Set("estado", *patch.Estado)
	}

	query, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("build update schedule: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Complete marca el cronograma como cumplido con un único UPDATE condicional
// que solo afecta filas en estado no terminal: una cancelación o un
// cumplimiento concurrente gana la carrera y esta escritura queda en no-op.
func (r *ScheduleRepo) Complete(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE schedules
		SET cumplido = true, estado = $2, fecha_cumplimiento = $3, updated_at = now()
		WHERE id = $1 AND estado IN ($4, $5)`
	tag, err := r.pool.Exec(ctx, query, id, entity.EstadoCompletado, at,
		entity.EstadoProgramado, entity.EstadoEnCurso)
	if err != nil {
		return false, fmt.Errorf("complete schedule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete borra definitivamente un cronograma.
func (r *ScheduleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Query ejecuta el predicado compilado del reporte. El SQL se arma con
// squirrel a partir de los campos presentes del predicado.
func (r *ScheduleRepo) Query(ctx context.Context, q repository.ScheduleQuery) ([]*entity.Schedule, error) {
	sel := psql.Select().
		Column(sq.Expr(scheduleColumns)).
		From("schedules s").
		Join("users t ON t.id = s.teacher_id").
		Join("subjects m ON m.id = s.subject_id").
		Join("groups g ON g.id = s.group_id").
		OrderBy("s.fecha DESC", "s.hora_inicio")

	if q.TeacherID != nil {
		sel = sel.Where(sq.Eq{"s.teacher_id": *q.TeacherID})
	}
	if q.SubjectID != nil {
		sel = sel.Where(sq.Eq{"s.subject_id": *q.SubjectID})
	}
	if q.GroupID != nil {
		sel = sel.Where(sq.Eq{"s.group_id": *q.GroupID})
	}
	if q.Estado != nil {
		sel = sel.Where(sq.Eq{"s.estado": *q.Estado})
	}
	if q.Modalidad != nil {
		sel = sel.Where(sq.Eq{"s.modalidad": *q.Modalidad})
	}
	if q.From != nil {
		sel = sel.Where(sq.GtOrEq{"s.fecha": *q.From})
	}
	if q.To != nil {
		sel = sel.Where(sq.LtOrEq{"s.fecha": *q.To})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build schedule query: %w", err)
	}
	return r.queryMany(ctx, query, args...)
}

func (r *ScheduleRepo) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Schedule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
