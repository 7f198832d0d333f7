package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los agregados del tablero.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de agregados.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// CountActiveUsers cuenta los usuarios activos.
func (r *StatsRepo) CountActiveUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM users WHERE is_active = true`)
}

// CountActiveSubjects cuenta las materias activas.
func (r *StatsRepo) CountActiveSubjects(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM subjects WHERE is_active = true`)
}

// CountGroups cuenta todos los grupos, sin distinción de estado.
func (r *StatsRepo) CountGroups(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM groups`)
}

// CountProgrammedSchedules cuenta los cronogramas en estado PROGRAMADO.
func (r *StatsRepo) CountProgrammedSchedules(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM schedules WHERE estado = $1`, entity.EstadoProgramado)
}
