// Package analytics contiene el caso de uso del tablero de indicadores.
package analytics

import (
	"context"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/domain/repository"
)

// DashboardUseCase calcula los conteos del tablero: usuarios activos,
// materias activas, grupos y cronogramas en estado PROGRAMADO.
//
// Las cuatro consultas se lanzan en paralelo; no se exige consistencia
// transaccional entre ellas (un desfase puntual entre conteos es aceptable).
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// Stats ejecuta los cuatro agregados concurrentemente y arma la respuesta.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	type countResult struct {
		n   int
		err error
	}

	usersCh := make(chan countResult, 1)
	subjectsCh := make(chan countResult, 1)
	schedulesCh := make(chan countResult, 1)
	groupsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.stats.CountActiveUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountActiveSubjects(ctx)
		subjectsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountProgrammedSchedules(ctx)
		schedulesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountGroups(ctx)
		groupsCh <- countResult{n, err}
	}()

	users := <-usersCh
	subjects := <-subjectsCh
	schedules := <-schedulesCh
	groups := <-groupsCh

	for _, r := range []countResult{users, subjects, schedules, groups} {
		if r.err != nil {
			return nil, r.err
		}
	}

	return &dto.DashboardStats{
		TotalUsers:     users.n,
		TotalSubjects:  subjects.n,
		TotalSchedules: schedules.n,
		TotalGroups:    groups.n,
	}, nil
}
