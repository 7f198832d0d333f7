package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academisoft/cronograma-api/internal/domain/entity"
)

func TestValidateTimeWindow(t *testing.T) {
	cases := []struct {
		name   string
		inicio int
		fin    int
		valido bool
	}{
		{"ventana normal de clase", 540, 600, true},
		{"jornada completa", 0, 1439, true},
		{"un minuto", 100, 101, true},
		{"fin igual a inicio", 540, 540, false},
		{"fin anterior a inicio", 600, 540, false},
		{"inicio negativo", -1, 600, false},
		{"fin fuera de rango", 540, 1440, false},
		{"inicio fuera de rango", 1440, 1441, false},
		{"ambos cero", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := entity.ValidateTimeWindow(tc.inicio, tc.fin)
			if tc.valido {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	// Transiciones permitidas vía PATCH: PROGRAMADO→EN_CURSO,
	// PROGRAMADO/EN_CURSO→CANCELADO. COMPLETADO solo por la operación
	// de cumplimiento; los estados terminales no admiten salida.
	assert.True(t, entity.CanTransition(entity.EstadoProgramado, entity.EstadoEnCurso))
	assert.True(t, entity.CanTransition(entity.EstadoProgramado, entity.EstadoCancelado))
	assert.True(t, entity.CanTransition(entity.EstadoEnCurso, entity.EstadoCancelado))

	assert.False(t, entity.CanTransition(entity.EstadoProgramado, entity.EstadoCompletado))
	assert.False(t, entity.CanTransition(entity.EstadoEnCurso, entity.EstadoCompletado))
	assert.False(t, entity.CanTransition(entity.EstadoCompletado, entity.EstadoProgramado))
	assert.False(t, entity.CanTransition(entity.EstadoCancelado, entity.EstadoProgramado))
	assert.False(t, entity.CanTransition(entity.EstadoCompletado, entity.EstadoCancelado))
	assert.False(t, entity.CanTransition(entity.EstadoEnCurso, entity.EstadoProgramado))
}

func TestValidEnums(t *testing.T) {
	assert.True(t, entity.ValidModalidad("PRESENCIAL"))
	assert.True(t, entity.ValidModalidad("VIRTUAL"))
	assert.True(t, entity.ValidModalidad("HIBRIDA"))
	assert.False(t, entity.ValidModalidad("presencial"))
	assert.False(t, entity.ValidModalidad(""))

	assert.True(t, entity.ValidEstado("PROGRAMADO"))
	assert.True(t, entity.ValidEstado("CANCELADO"))
	assert.False(t, entity.ValidEstado("TERMINADO"))

	assert.True(t, entity.ValidRole("DOCENTE"))
	assert.False(t, entity.ValidRole("docente"))
}
