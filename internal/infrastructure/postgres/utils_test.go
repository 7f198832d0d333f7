package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTraduccionErroresPg(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "schedules_teacher_id_fkey"}
	unico := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))

	assert.True(t, isUniqueViolation(unico))
	assert.False(t, isForeignKeyViolation(unico))

	// Los repositorios envuelven con contexto antes de inspeccionar.
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert schedule: %w", fk)))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", unico)))

	assert.False(t, isForeignKeyViolation(nil))
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isForeignKeyViolation(errors.New("timeout")))
}
