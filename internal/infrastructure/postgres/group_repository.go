package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	pool *pgxpool.Pool
}

// NewGroupRepository construye el adaptador de persistencia para grupos.
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepo {
	return &GroupRepo{pool: pool}
}

const groupColumns = `id, code, name, semester, year, max_students, is_active, created_at, updated_at`

func scanGroup(row pgx.Row) (*entity.Group, error) {
	var g entity.Group
	err := row.Scan(
		&g.ID, &g.Code, &g.Name, &g.Semester, &g.Year,
		&g.MaxStudents, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create persiste un grupo. Código repetido → domain.ErrDuplicate.
func (r *GroupRepo) Create(ctx context.Context, group *entity.Group) error {
	query := `INSERT INTO groups (` + groupColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		group.ID, group.Code, group.Name, group.Semester, group.Year,
		group.MaxStudents, group.IsActive, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID; nil si no existe.
func (r *GroupRepo) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	g, err := scanGroup(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group by id: %w", err)
	}
	return g, nil
}

// Update actualiza un grupo.
func (r *GroupRepo) Update(ctx context.Context, group *entity.Group) error {
	query := `
		UPDATE groups
		SET name = $2, semester = $3, year = $4, max_students = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		group.ID, group.Name, group.Semester, group.Year,
		group.MaxStudents, group.IsActive, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los grupos ordenados por año, semestre y código.
func (r *GroupRepo) List(ctx context.Context) ([]*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups ORDER BY year DESC, semester DESC, code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
