package dto

// DashboardStats conteos del tablero. TotalSchedules cuenta solo los
// cronogramas en estado PROGRAMADO.
type DashboardStats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalSubjects  int `json:"totalSubjects"`
	TotalSchedules int `json:"totalSchedules"`
	TotalGroups    int `json:"totalGroups"`
}
