package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain/entity"
	"github.com/academisoft/cronograma-api/internal/domain/policy"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// ReportUseCase compila los filtros dispersos del reporte a un predicado
// normalizado y lo ejecuta contra el repositorio. Solo roles de reporte.
type ReportUseCase struct {
	schedules repository.ScheduleRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(schedules repository.ScheduleRepository) *ReportUseCase {
	return &ReportUseCase{schedules: schedules}
}

// FilteredSchedules ejecuta el reporte con los filtros dados. Misma
// proyección y orden (fecha descendente) que el listado general.
func (uc *ReportUseCase) FilteredSchedules(ctx context.Context, actor Actor, filter dto.ScheduleReportFilter) ([]*dto.ScheduleResponse, error) {
	if err := authorize(actor, policy.ActionReportRead); err != nil {
		return nil, err
	}
	q, err := CompileFilter(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.schedules.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, scheduleToResponse(s))
	}
	return out, nil
}

// CompileFilter normaliza y compila el conjunto de filtros. Reglas:
//   - "all" y la cadena vacía equivalen a campo ausente.
//   - teacherId/subjectId/groupId deben ser UUID; status y modality deben
//     pertenecer a sus enums.
//   - year solo: rango [1 ene 00:00:00.000 UTC, 31 dic 23:59:59.999 UTC].
//   - year + month: rango del mes completo, febreros bisiestos incluidos.
//   - month sin year: error de validación.
//
// Función pura; no toca el repositorio.
func CompileFilter(f dto.ScheduleReportFilter) (repository.ScheduleQuery, error) {
	var q repository.ScheduleQuery

	if v := normalizeFilterValue(f.TeacherID); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return q, validation.NewError("teacherId", "debe ser un UUID válido")
		}
		q.TeacherID = &v
	}
	if v := normalizeFilterValue(f.SubjectID); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return q, validation.NewError("subjectId", "debe ser un UUID válido")
		}
		q.SubjectID = &v
	}
	if v := normalizeFilterValue(f.GroupID); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return q, validation.NewError("groupId", "debe ser un UUID válido")
		}
		q.GroupID = &v
	}
	if v := normalizeFilterValue(f.Status); v != "" {
		if !entity.ValidEstado(v) {
			return q, validation.NewError("status", "estado inválido; permitidos: PROGRAMADO, EN_CURSO, COMPLETADO, CANCELADO")
		}
		q.Estado = &v
	}
	if v := normalizeFilterValue(f.Modality); v != "" {
		if !entity.ValidModalidad(v) {
			return q, validation.NewError("modality", "modalidad inválida; permitidos: PRESENCIAL, VIRTUAL, HIBRIDA")
		}
		q.Modalidad = &v
	}

	monthRaw := normalizeFilterValue(f.Month)
	yearRaw := normalizeFilterValue(f.Year)
	if monthRaw != "" && yearRaw == "" {
		return q, validation.NewError("month", "month requiere year")
	}
	if yearRaw != "" {
		year, err := strconv.Atoi(yearRaw)
		if err != nil || year < 2020 || year > time.Now().Year()+5 {
			return q, validation.NewError("year", "año fuera de rango")
		}
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0).Add(-time.Millisecond)
		if monthRaw != "" {
			month, err := strconv.Atoi(monthRaw)
			if err != nil || month < 1 || month > 12 {
				return q, validation.NewError("month", "el mes debe estar entre 1 y 12")
			}
			from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			// AddDate normaliza el cambio de año; el último día del mes
			// (incluido un 29 de febrero) sale solo.
			to = from.AddDate(0, 1, 0).Add(-time.Millisecond)
		}
		q.From = &from
		q.To = &to
	}

	return q, nil
}

// normalizeFilterValue trata "all" y "" como ausencia de filtro.
func normalizeFilterValue(v string) string {
	if v == "all" {
		return ""
	}
	return v
}
