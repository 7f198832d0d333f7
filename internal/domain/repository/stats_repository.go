package repository

import "context"

// StatsRepository expone los agregados del dashboard. Cada conteo es una
// consulta independiente; no se exige consistencia transaccional entre ellos.
type StatsRepository interface {
	CountActiveUsers(ctx context.Context) (int, error)
	CountActiveSubjects(ctx context.Context) (int, error)
	CountGroups(ctx context.Context) (int, error)
	// CountProgrammedSchedules cuenta solo los cronogramas en estado
	// PROGRAMADO, no el total.
	CountProgrammedSchedules(ctx context.Context) (int, error)
}
