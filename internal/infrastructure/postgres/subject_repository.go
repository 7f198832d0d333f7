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

var _ repository.SubjectRepository = (*SubjectRepo)(nil)

// SubjectRepo implementación del puerto SubjectRepository sobre PostgreSQL.
type SubjectRepo struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository construye el adaptador de persistencia para materias.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepo {
	return &SubjectRepo{pool: pool}
}

const subjectColumns = `id, name, code, credits, is_active, created_at, updated_at`

func scanSubject(row pgx.Row) (*entity.Subject, error) {
	var s entity.Subject
	err := row.Scan(&s.ID, &s.Name, &s.Code, &s.Credits, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una materia. Código repetido → domain.ErrDuplicate.
func (r *SubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	query := `INSERT INTO subjects (` + subjectColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		subject.ID, subject.Name, subject.Code, subject.Credits,
		subject.IsActive, subject.CreatedAt, subject.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subject: %w", err)
	}
	return nil
}

// GetByID obtiene una materia por ID; nil si no existe.
func (r *SubjectRepo) GetByID(ctx context.Context, id string) (*entity.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1`
	s, err := scanSubject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject by id: %w", err)
	}
	return s, nil
}

// Update actualiza una materia.
func (r *SubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	query := `
		UPDATE subjects
		SET name = $2, credits = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		subject.ID, subject.Name, subject.Credits, subject.IsActive, subject.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las materias ordenadas por código.
func (r *SubjectRepo) List(ctx context.Context) ([]*entity.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects ORDER BY code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
