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
	"github.com/academisoft/cronograma-api/internal/domain/repository"
	"github.com/academisoft/cronograma-api/pkg/validation"
)

// fakeScheduleRepo implementación en memoria del puerto para las pruebas del
// caso de uso. Sin orden garantizado en los listados.
type fakeScheduleRepo struct {
	store map[string]*entity.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{store: map[string]*entity.Schedule{}}
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *entity.Schedule) error {
	cp := *s
	f.store[s.ID] = &cp
	return nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (*entity.Schedule, error) {
	s, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range f.store {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListByTeacher(_ context.Context, teacherID string) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range f.store {
		if s.TeacherID == teacherID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, id string, patch repository.SchedulePatch) error {
	s, ok := f.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Fecha != nil {
		s.Fecha = *patch.Fecha
	}
	if patch.HoraInicio != nil {
		s.HoraInicio = *patch.HoraInicio
	}
	if patch.HoraFin != nil {
		s.HoraFin = *patch.HoraFin
	}
	if patch.Modalidad != nil {
		s.Modalidad = *patch.Modalidad
	}
	if patch.Aula != nil {
		s.Aula = patch.Aula
	}
	if patch.TeacherID != nil {
		s.TeacherID = *patch.TeacherID
	}
	if patch.SubjectID != nil {
		s.SubjectID = *patch.SubjectID
	}
	if patch.GroupID != nil {
		s.GroupID = *patch.GroupID
	}
	if patch.Observaciones != nil {
		s.Observaciones = patch.Observaciones
	}
	if patch.Estado != nil {
		s.Estado = *patch.Estado
	}
	return nil
}

func (f *fakeScheduleRepo) Complete(_ context.Context, id string, at time.Time) (bool, error) {
	s, ok := f.store[id]
	if !ok {
		return false, nil
	}
	if entity.TerminalEstado(s.Estado) {
		return false, nil
	}
	s.Estado = entity.EstadoCompletado
	s.Cumplido = true
	s.FechaCumplimiento = &at
	return true, nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.store, id)
	return nil
}

func (f *fakeScheduleRepo) Query(_ context.Context, q repository.ScheduleQuery) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range f.store {
		if q.TeacherID != nil && s.TeacherID != *q.TeacherID {
			continue
		}
		if q.SubjectID != nil && s.SubjectID != *q.SubjectID {
			continue
		}
		if q.GroupID != nil && s.GroupID != *q.GroupID {
			continue
		}
		if q.Estado != nil && s.Estado != *q.Estado {
			continue
		}
		if q.Modalidad != nil && s.Modalidad != *q.Modalidad {
			continue
		}
		if q.From != nil && s.Fecha.Before(*q.From) {
			continue
		}
		if q.To != nil && s.Fecha.After(*q.To) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// mutateOnReadRepo intercala una mutación concurrente entre la lectura del
// caso de uso y su escritura: la primera lectura del id devuelve la copia
// vieja y a la vez muta el registro almacenado.
type mutateOnReadRepo struct {
	*fakeScheduleRepo
	id     string
	mutate func(*entity.Schedule)
	done   bool
}

func (r *mutateOnReadRepo) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	s, err := r.fakeScheduleRepo.GetByID(ctx, id)
	if err == nil && s != nil && id == r.id && !r.done {
		r.done = true
		r.mutate(r.store[id])
	}
	return s, err
}

const (
	testTeacherID = "6ba7b810-9dad-11d1-80b4-00c04fd430c1"
	testSubjectID = "6ba7b810-9dad-11d1-80b4-00c04fd430c2"
	testGroupID   = "6ba7b810-9dad-11d1-80b4-00c04fd430c3"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func validCreateRequest() dto.CreateScheduleRequest {
	return dto.CreateScheduleRequest{
		Fecha:      "2025-03-14",
		HoraInicio: intPtr(540),
		HoraFin:    intPtr(600),
		Modalidad:  entity.ModalidadPresencial,
		TeacherID:  testTeacherID,
		SubjectID:  testSubjectID,
		GroupID:    testGroupID,
	}
}

func seedSchedule(repo *fakeScheduleRepo, id, teacherID, estado string) *entity.Schedule {
	s := &entity.Schedule{
		ID:         id,
		Fecha:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		HoraInicio: 540,
		HoraFin:    600,
		Modalidad:  entity.ModalidadPresencial,
		TeacherID:  teacherID,
		SubjectID:  testSubjectID,
		GroupID:    testGroupID,
		Estado:     estado,
		Cumplido:   estado == entity.EstadoCompletado,
	}
	if s.Cumplido {
		at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		s.FechaCumplimiento = &at
	}
	repo.store[id] = s
	return s
}

func TestScheduleCreate(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAsistente}

	out, err := uc.Create(context.Background(), actor, validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "2025-03-14", out.Fecha)
	assert.Equal(t, 540, out.HoraInicio)
	assert.Equal(t, 600, out.HoraFin)
	assert.Equal(t, entity.EstadoProgramado, out.Estado)
	assert.False(t, out.Cumplido)
	assert.Nil(t, out.FechaCumplimiento)
	assert.Len(t, repo.store, 1)
}

func TestScheduleCreateVentanaInvalida(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	cases := []struct {
		name   string
		inicio int
		fin    int
	}{
		{"fin igual a inicio", 540, 540},
		{"fin anterior a inicio", 600, 540},
		{"fin fuera de rango", 540, 1440},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.HoraInicio = intPtr(tc.inicio)
			req.HoraFin = intPtr(tc.fin)

			_, err := uc.Create(context.Background(), actor, req)
			require.Error(t, err)
			var verr *validation.Error
			assert.True(t, errors.As(err, &verr))
			assert.Empty(t, repo.store, "una petición rechazada no debe persistir nada")
		})
	}
}

func TestScheduleCreateRoles(t *testing.T) {
	cases := []struct {
		role    string
		allowed bool
	}{
		{entity.RoleSuperadmin, true},
		{entity.RoleAdmin, true},
		{entity.RoleDirector, false},
		{entity.RoleCoordinador, true},
		{entity.RoleAsistente, true},
		{entity.RoleDocente, false},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			repo := newFakeScheduleRepo()
			uc := NewScheduleUseCase(repo)

			_, err := uc.Create(context.Background(), Actor{ID: "u1", Role: tc.role}, validCreateRequest())
			if tc.allowed {
				assert.NoError(t, err)
				assert.Len(t, repo.store, 1)
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden)
				assert.Empty(t, repo.store)
			}
		})
	}
}

// fkFailRepo simula una violación de llave foránea ya traducida por la capa
// de persistencia (teacherId/subjectId/groupId inexistente).
type fkFailRepo struct {
	*fakeScheduleRepo
}

func (r *fkFailRepo) Create(context.Context, *entity.Schedule) error {
	return domain.ErrForeignKey
}

func TestScheduleCreateReferenciaInexistente(t *testing.T) {
	fake := newFakeScheduleRepo()
	uc := NewScheduleUseCase(&fkFailRepo{fakeScheduleRepo: fake})

	_, err := uc.Create(context.Background(), Actor{ID: "u1", Role: entity.RoleAdmin}, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrForeignKey)
	assert.Empty(t, fake.store)
}

func TestScheduleCreateSinAutenticar(t *testing.T) {
	uc := NewScheduleUseCase(newFakeScheduleRepo())
	_, err := uc.Create(context.Background(), Actor{}, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestScheduleUpdateVentanaCombinada(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	// Solo hora_inicio en el parche: la ventana resultante (650, 600) es
	// inválida aunque cada campo por separado esté en rango.
	_, err := uc.Update(context.Background(), actor, "s1", dto.UpdateScheduleRequest{
		HoraInicio: intPtr(650),
	})
	require.Error(t, err)
	var verr *validation.Error
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, 540, repo.store["s1"].HoraInicio, "el registro no debe cambiar")

	// Parche coherente: ambos extremos.
	out, err := uc.Update(context.Background(), actor, "s1", dto.UpdateScheduleRequest{
		HoraInicio: intPtr(650),
		HoraFin:    intPtr(710),
	})
	require.NoError(t, err)
	assert.Equal(t, 650, out.HoraInicio)
	assert.Equal(t, 710, out.HoraFin)
}

func TestScheduleUpdateTransicionEstado(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleCoordinador}

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)
	out, err := uc.Update(context.Background(), actor, "s1", dto.UpdateScheduleRequest{
		Estado: strPtr(entity.EstadoEnCurso),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnCurso, out.Estado)

	// Los estados terminales no admiten más transiciones.
	seedSchedule(repo, "s2", testTeacherID, entity.EstadoCompletado)
	_, err = uc.Update(context.Background(), actor, "s2", dto.UpdateScheduleRequest{
		Estado: strPtr(entity.EstadoCancelado),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestScheduleUpdateNoExiste(t *testing.T) {
	uc := NewScheduleUseCase(newFakeScheduleRepo())
	_, err := uc.Update(context.Background(), Actor{ID: "u1", Role: entity.RoleAdmin}, "nope", dto.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleComplete(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	frozen := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return frozen }

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)
	out, err := uc.Complete(context.Background(), Actor{ID: "u1", Role: entity.RoleAsistente}, "s1")
	require.NoError(t, err)

	assert.True(t, out.Cumplido)
	assert.Equal(t, entity.EstadoCompletado, out.Estado)
	require.NotNil(t, out.FechaCumplimiento)
	assert.Equal(t, frozen, *out.FechaCumplimiento)
}

func TestScheduleCompleteDocentePropio(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	docente := Actor{ID: testTeacherID, Role: entity.RoleDocente}

	seedSchedule(repo, "propio", testTeacherID, entity.EstadoProgramado)
	seedSchedule(repo, "ajeno", "otro-docente", entity.EstadoProgramado)

	out, err := uc.Complete(context.Background(), docente, "propio")
	require.NoError(t, err)
	assert.True(t, out.Cumplido)

	// Sobre la jornada de otro docente el DOCENTE no tiene permiso, aunque
	// la acción en sí esté en su política.
	_, err = uc.Complete(context.Background(), docente, "ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, repo.store["ajeno"].Cumplido)
}

func TestScheduleCompleteRepetido(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoCompletado)
	_, err := uc.Complete(context.Background(), actor, "s1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestScheduleCompleteCarreraConCancelacion(t *testing.T) {
	fake := newFakeScheduleRepo()
	seedSchedule(fake, "s1", testTeacherID, entity.EstadoProgramado)
	// Una cancelación aterriza entre la lectura del caso de uso y su
	// escritura condicional.
	repo := &mutateOnReadRepo{
		fakeScheduleRepo: fake,
		id:               "s1",
		mutate: func(s *entity.Schedule) {
			s.Estado = entity.EstadoCancelado
		},
	}
	uc := NewScheduleUseCase(repo)

	_, err := uc.Complete(context.Background(), Actor{ID: "u1", Role: entity.RoleAdmin}, "s1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	// El estado terminal sobrevive: la cancelación no se pisa.
	assert.Equal(t, entity.EstadoCancelado, fake.store["s1"].Estado)
	assert.False(t, fake.store["s1"].Cumplido)
	assert.Nil(t, fake.store["s1"].FechaCumplimiento)
}

func TestScheduleCompleteCarreraConOtroCumplimiento(t *testing.T) {
	fake := newFakeScheduleRepo()
	seedSchedule(fake, "s1", testTeacherID, entity.EstadoProgramado)
	otro := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	repo := &mutateOnReadRepo{
		fakeScheduleRepo: fake,
		id:               "s1",
		mutate: func(s *entity.Schedule) {
			s.Estado = entity.EstadoCompletado
			s.Cumplido = true
			s.FechaCumplimiento = &otro
		},
	}
	uc := NewScheduleUseCase(repo)

	_, err := uc.Complete(context.Background(), Actor{ID: "u1", Role: entity.RoleAdmin}, "s1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	// El primer cumplimiento conserva su sello de tiempo.
	require.NotNil(t, fake.store["s1"].FechaCumplimiento)
	assert.Equal(t, otro, *fake.store["s1"].FechaCumplimiento)
}

func TestScheduleCompleteCancelado(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoCancelado)
	_, err := uc.Complete(context.Background(), actor, "s1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestScheduleDelete(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)
	actor := Actor{ID: "u1", Role: entity.RoleAdmin}

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)
	out, err := uc.Delete(context.Background(), actor, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", out.ID, "el borrado devuelve el registro eliminado")
	assert.Empty(t, repo.store)

	_, err = uc.Delete(context.Background(), actor, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleListDocenteSoloPropios(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)

	seedSchedule(repo, "s1", testTeacherID, entity.EstadoProgramado)
	seedSchedule(repo, "s2", testTeacherID, entity.EstadoProgramado)
	seedSchedule(repo, "s3", "otro-docente", entity.EstadoProgramado)

	// El docente solo ve los suyos; el filtrado es del servidor.
	list, err := uc.List(context.Background(), Actor{ID: testTeacherID, Role: entity.RoleDocente})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Un rol administrativo ve todos.
	list, err = uc.List(context.Background(), Actor{ID: "u1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestScheduleGetByIDDocenteAjeno(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUseCase(repo)

	seedSchedule(repo, "ajeno", "otro-docente", entity.EstadoProgramado)
	_, err := uc.GetByID(context.Background(), Actor{ID: testTeacherID, Role: entity.RoleDocente}, "ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
