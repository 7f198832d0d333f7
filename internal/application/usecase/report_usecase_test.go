package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

func TestCompileFilterVacio(t *testing.T) {
	q, err := CompileFilter(dto.ScheduleReportFilter{})
	require.NoError(t, err)
	assert.Nil(t, q.TeacherID)
	assert.Nil(t, q.SubjectID)
	assert.Nil(t, q.GroupID)
	assert.Nil(t, q.Estado)
	assert.Nil(t, q.Modalidad)
	assert.Nil(t, q.From)
	assert.Nil(t, q.To)
}

func TestCompileFilterAllEquivaleAusente(t *testing.T) {
	conAll, err := CompileFilter(dto.ScheduleReportFilter{
		TeacherID: "all", SubjectID: "all", GroupID: "all",
		Status: "all", Modality: "all", Month: "all", Year: "all",
	})
	require.NoError(t, err)

	vacio, err := CompileFilter(dto.ScheduleReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, vacio, conAll)
}

func TestCompileFilterCampos(t *testing.T) {
	q, err := CompileFilter(dto.ScheduleReportFilter{
		TeacherID: testTeacherID,
		Status:    entity.EstadoCompletado,
		Modality:  entity.ModalidadVirtual,
	})
	require.NoError(t, err)
	require.NotNil(t, q.TeacherID)
	assert.Equal(t, testTeacherID, *q.TeacherID)
	require.NotNil(t, q.Estado)
	assert.Equal(t, entity.EstadoCompletado, *q.Estado)
	require.NotNil(t, q.Modalidad)
	assert.Equal(t, entity.ModalidadVirtual, *q.Modalidad)
}

func TestCompileFilterInvalidos(t *testing.T) {
	cases := []struct {
		name   string
		filter dto.ScheduleReportFilter
	}{
		{"teacherId no UUID", dto.ScheduleReportFilter{TeacherID: "no-es-uuid"}},
		{"subjectId no UUID", dto.ScheduleReportFilter{SubjectID: "123"}},
		{"estado fuera del enum", dto.ScheduleReportFilter{Status: "TERMINADO"}},
		{"modalidad fuera del enum", dto.ScheduleReportFilter{Modality: "REMOTA"}},
		{"month sin year", dto.ScheduleReportFilter{Month: "5"}},
		{"month fuera de rango", dto.ScheduleReportFilter{Month: "13", Year: "2025"}},
		{"year no numérico", dto.ScheduleReportFilter{Year: "dosmil"}},
		{"year fuera de rango", dto.ScheduleReportFilter{Year: "1999"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompileFilter(tc.filter)
			require.Error(t, err)
			var verr *validation.Error
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestCompileFilterRangoAnual(t *testing.T) {
	q, err := CompileFilter(dto.ScheduleReportFilter{Year: "2025"})
	require.NoError(t, err)
	require.NotNil(t, q.From)
	require.NotNil(t, q.To)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *q.From)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC), *q.To)
}

func TestCompileFilterRangoMensual(t *testing.T) {
	cases := []struct {
		name  string
		month string
		year  string
		from  time.Time
		to    time.Time
	}{
		{
			"febrero común", "2", "2025",
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 28, 23, 59, 59, 999000000, time.UTC),
		},
		{
			"febrero bisiesto", "2", "2024",
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			"diciembre cruza el año", "12", "2025",
			time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := CompileFilter(dto.ScheduleReportFilter{Month: tc.month, Year: tc.year})
			require.NoError(t, err)
			require.NotNil(t, q.From)
			require.NotNil(t, q.To)
			assert.Equal(t, tc.from, *q.From)
			assert.Equal(t, tc.to, *q.To)
		})
	}
}

func TestFilteredSchedulesPolitica(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewReportUseCase(repo)
	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)

	// DOCENTE no tiene acceso a reportes.
	_, err := uc.FilteredSchedules(context.Background(), Actor{ID: testTeacherID, Role: entity.RoleDocente}, dto.ScheduleReportFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.FilteredSchedules(context.Background(), Actor{ID: "u1", Role: entity.RoleSuperadmin}, dto.ScheduleReportFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFilteredSchedulesPorRango(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewReportUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	dentro := seedSchedule(repo, "dentro", testTeacherID, entity.EstadoProgramado)
	dentro.Fecha = time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	fuera := seedSchedule(repo, "fuera", testTeacherID, entity.EstadoProgramado)
	fuera.Fecha = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	list, err := uc.FilteredSchedules(context.Background(), actor, dto.ScheduleReportFilter{Month: "2", Year: "2025"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "dentro", list[0].ID)
}

func TestFilteredSchedulesPorMateriaYGrupo(t *testing.T) {
	const (
		otraMateria = "6ba7b810-9dad-11d1-80b4-00c04fd430c4"
		otroGrupo   = "6ba7b810-9dad-11d1-80b4-00c04fd430c5"
	)
	repo := newFakeScheduleRepo()
	uc := NewReportUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	seedSchedule(repo, "base", testTeacherID, entity.EstadoProgramado)
	cambiado := seedSchedule(repo, "cambiado", testTeacherID, entity.EstadoProgramado)
	cambiado.SubjectID = otraMateria
	cambiado.GroupID = otroGrupo

	list, err := uc.FilteredSchedules(context.Background(), actor, dto.ScheduleReportFilter{SubjectID: otraMateria})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cambiado", list[0].ID)

	list, err = uc.FilteredSchedules(context.Background(), actor, dto.ScheduleReportFilter{GroupID: testGroupID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "base", list[0].ID)

	// Materia y grupo combinados que ningún registro cumple a la vez.
	list, err = uc.FilteredSchedules(context.Background(), actor, dto.ScheduleReportFilter{
		SubjectID: otraMateria,
		GroupID:   testGroupID,
	})
	require.NoError(t, err)
	assert.Empty(t, list)
}
