package dto

import "time"

// CreateScheduleRequest alta de cronograma. Las horas son minutos desde
// medianoche; se usan punteros para distinguir 0 (medianoche) de ausente.
type CreateScheduleRequest struct {
	Fecha         string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	HoraInicio    *int    `json:"hora_inicio" validate:"required,min=0,max=1439"`
	HoraFin       *int    `json:"hora_fin" validate:"required,min=0,max=1439"`
	Modalidad     string  `json:"modalidad" validate:"required,oneof=PRESENCIAL VIRTUAL HIBRIDA"`
	Aula          *string `json:"aula" validate:"omitempty,max=50"`
	TeacherID     string  `json:"teacherId" validate:"required,uuid"`
	SubjectID     string  `json:"subjectId" validate:"required,uuid"`
	GroupID       string  `json:"groupId" validate:"required,uuid"`
	Observaciones *string `json:"observaciones" validate:"omitempty,max=500"`
}

// UpdateScheduleRequest actualización parcial: solo los campos presentes se
// aplican. Estado solo admite transiciones explícitas a EN_CURSO o CANCELADO;
// COMPLETADO se alcanza únicamente por el endpoint de cumplimiento.
type UpdateScheduleRequest struct {
	Fecha         *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	HoraInicio    *int    `json:"hora_inicio" validate:"omitempty,min=0,max=1439"`
	HoraFin       *int    `json:"hora_fin" validate:"omitempty,min=0,max=1439"`
	Modalidad     *string `json:"modalidad" validate:"omitempty,oneof=PRESENCIAL VIRTUAL HIBRIDA"`
	Aula          *string `json:"aula" validate:"omitempty,max=50"`
	TeacherID     *string `json:"teacherId" validate:"omitempty,uuid"`
	SubjectID     *string `json:"subjectId" validate:"omitempty,uuid"`
	GroupID       *string `json:"groupId" validate:"omitempty,uuid"`
	Observaciones *string `json:"observaciones" validate:"omitempty,max=500"`
	Estado        *string `json:"estado" validate:"omitempty,oneof=EN_CURSO CANCELADO"`
}

// ScheduleResponse proyección de un cronograma con los datos denormalizados
// de docente, materia y grupo (solo id + nombre, nunca credenciales).
type ScheduleResponse struct {
	ID                string     `json:"id"`
	Fecha             string     `json:"fecha"` // YYYY-MM-DD
	HoraInicio        int        `json:"hora_inicio"`
	HoraFin           int        `json:"hora_fin"`
	Modalidad         string     `json:"modalidad"`
	Aula              *string    `json:"aula"`
	TeacherID         string     `json:"teacherId"`
	TeacherName       string     `json:"teacherName"`
	SubjectID         string     `json:"subjectId"`
	SubjectName       string     `json:"subjectName"`
	SubjectCode       string     `json:"subjectCode"`
	GroupID           string     `json:"groupId"`
	GroupName         string     `json:"groupName"`
	Observaciones     *string    `json:"observaciones"`
	Estado            string     `json:"estado"`
	Cumplido          bool       `json:"cumplido"`
	FechaCumplimiento *time.Time `json:"fecha_cumplimiento"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// DeleteScheduleResponse confirma un borrado devolviendo el registro eliminado.
type DeleteScheduleResponse struct {
	Message  string           `json:"message"`
	Schedule ScheduleResponse `json:"schedule"`
}
