package dto

// ScheduleReportFilter filtros crudos del reporte, tal como llegan por query
// string. Cada campo es individualmente opcional; el literal "all" o la
// cadena vacía equivalen a no filtrar por ese campo.
type ScheduleReportFilter struct {
	TeacherID string `query:"teacherId"`
	SubjectID string `query:"subjectId"`
	GroupID   string `query:"groupId"`
	Status    string `query:"status"`
	Modality  string `query:"modality"`
	Month     string `query:"month"` // 1–12; requiere year
	Year      string `query:"year"`
}
