package http

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// Taxonomía completa de writeError: cada error de dominio mapea a un código
// HTTP y un code estable; lo no reconocido es un 500 sin filtrar detalles.
func TestWriteErrorTaxonomia(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", validation.NewError("fecha", "formato inválido"), fiber.StatusBadRequest, "VALIDATION"},
		{"no autenticado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"sin permiso", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"no existe", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no existe", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"referencia inexistente", domain.ErrForeignKey, fiber.StatusBadRequest, "FOREIGN_KEY"},
		{"ya cumplido", domain.ErrAlreadyCompleted, fiber.StatusConflict, "ALREADY_COMPLETED"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"conflicto de estado", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"desconocido", errors.New("se cayó el pool"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return writeError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp.Body).Code)
		})
	}
}

func TestWriteErrorCamposDeValidacion(t *testing.T) {
	verr := validation.NewError("hora_fin", "debe ser posterior a hora_inicio")
	verr.Add("modalidad", "valor inválido")

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return writeError(c, verr)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeError(t, resp.Body)
	require.Len(t, out.Fields, 2)
	assert.Equal(t, "hora_fin", out.Fields[0].Field)
	assert.Equal(t, "modalidad", out.Fields[1].Field)
}
