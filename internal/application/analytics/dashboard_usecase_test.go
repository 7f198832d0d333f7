package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	users, subjects, groups, schedules int
	err                                error
}

func (f *fakeStatsRepo) CountActiveUsers(context.Context) (int, error)    { return f.users, f.err }
func (f *fakeStatsRepo) CountActiveSubjects(context.Context) (int, error) { return f.subjects, f.err }
func (f *fakeStatsRepo) CountGroups(context.Context) (int, error)         { return f.groups, f.err }
func (f *fakeStatsRepo) CountProgrammedSchedules(context.Context) (int, error) {
	return f.schedules, f.err
}

func TestDashboardStats(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStatsRepo{users: 12, subjects: 8, groups: 5, schedules: 31})

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 8, stats.TotalSubjects)
	assert.Equal(t, 5, stats.TotalGroups)
	assert.Equal(t, 31, stats.TotalSchedules)
}

func TestDashboardStatsVacio(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStatsRepo{})

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalSubjects)
	assert.Zero(t, stats.TotalGroups)
	assert.Zero(t, stats.TotalSchedules)
}

func TestDashboardStatsError(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := NewDashboardUseCase(&fakeStatsRepo{err: boom})

	_, err := uc.Stats(context.Background())
	assert.ErrorIs(t, err, boom)
}
