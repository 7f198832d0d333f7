package entity

import (
	"fmt"
	"time"
)

// Modalidades de dictado.
const (
	ModalidadPresencial = "PRESENCIAL"
	ModalidadVirtual    = "VIRTUAL"
	ModalidadHibrida    = "HIBRIDA"
)

// Estados del ciclo de vida de un cronograma.
// PROGRAMADO es el estado inicial; COMPLETADO y CANCELADO son terminales.
const (
	EstadoProgramado = "PROGRAMADO"
	EstadoEnCurso    = "EN_CURSO"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// Límites de una hora expresada en minutos desde medianoche.
const (
	MinMinuteOfDay = 0
	MaxMinuteOfDay = 1439
)

// ValidModalidad indica si el valor pertenece al enum de modalidades.
func ValidModalidad(m string) bool {
	return m == ModalidadPresencial || m == ModalidadVirtual || m == ModalidadHibrida
}

// ValidEstado indica si el valor pertenece al enum de estados.
func ValidEstado(e string) bool {
	return e == EstadoProgramado || e == EstadoEnCurso || e == EstadoCompletado || e == EstadoCancelado
}

// TerminalEstado indica si el estado no admite más transiciones.
func TerminalEstado(e string) bool {
	return e == EstadoCompletado || e == EstadoCancelado
}

// ValidateTimeWindow valida la ventana horaria de un cronograma: ambos valores
// en [0, 1439] y hora_fin estrictamente posterior a hora_inicio. Función pura.
func ValidateTimeWindow(horaInicio, horaFin int) error {
	if horaInicio < MinMinuteOfDay || horaInicio > MaxMinuteOfDay {
		return fmt.Errorf("hora_inicio fuera de rango [%d, %d]: %d", MinMinuteOfDay, MaxMinuteOfDay, horaInicio)
	}
	if horaFin < MinMinuteOfDay || horaFin > MaxMinuteOfDay {
		return fmt.Errorf("hora_fin fuera de rango [%d, %d]: %d", MinMinuteOfDay, MaxMinuteOfDay, horaFin)
	}
	if horaFin <= horaInicio {
		return fmt.Errorf("hora_fin (%d) debe ser posterior a hora_inicio (%d)", horaFin, horaInicio)
	}
	return nil
}

// Schedule representa una jornada de clase: docente + materia + grupo en una
// fecha con una ventana horaria.
//
// Invariantes:
//   - hora_fin > hora_inicio, ambos en [0, 1439].
//   - Cumplido == true ⇔ Estado == COMPLETADO con FechaCumplimiento no nula.
//   - Fecha normalizada a medianoche UTC (sin componente horaria).
type Schedule struct {
	ID                string
	Fecha             time.Time // fecha calendario, 00:00:00 UTC
	HoraInicio        int       // minutos desde medianoche
	HoraFin           int       // minutos desde medianoche
	Modalidad         string
	Aula              *string
	TeacherID         string
	SubjectID         string
	GroupID           string
	Observaciones     *string
	Estado            string
	Cumplido          bool
	FechaCumplimiento *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Proyección de lectura (join con users/subjects/groups). Solo para
	// respuestas; nunca se persiste desde aquí.
	TeacherName string
	SubjectName string
	SubjectCode string
	GroupName   string
}

// CanTransition valida una transición de estado solicitada vía actualización
// parcial. COMPLETADO solo es alcanzable por la operación de cumplimiento,
// nunca por un PATCH de campos.
func CanTransition(from, to string) bool {
	if TerminalEstado(from) {
		return false
	}
	switch to {
	case EstadoEnCurso:
		return from == EstadoProgramado
	case EstadoCancelado:
		return from == EstadoProgramado || from == EstadoEnCurso
	default:
		return false
	}
}
