// Package policy define la tabla estática de autorización por rol.
// Una sola fuente de verdad consultada por el middleware HTTP y por los
// casos de uso; evita repartir listas de roles por el código de rutas.
package policy

import "github.com/academisoft/cronograma-api/internal/domain/entity"

// Action identifica una operación autorizable sobre el dominio.
type Action string

const (
	ActionScheduleRead     Action = "schedule:read"
	ActionScheduleCreate   Action = "schedule:create"
	ActionScheduleUpdate   Action = "schedule:update"
	ActionScheduleComplete Action = "schedule:complete"
	ActionScheduleDelete   Action = "schedule:delete"
	ActionReportRead       Action = "report:read"
	ActionGroupCreate      Action = "group:create"
	ActionSubjectCreate    Action = "subject:create"
	ActionUserCreate       Action = "user:create"
	ActionUserUpdate       Action = "user:update"
)

// table mapea acción → roles permitidos. Conjunto cerrado: una acción que no
// figura aquí se niega para todo rol.
var table = map[Action]map[string]bool{
	ActionScheduleRead: roles(entity.AllRoles...),
	ActionScheduleCreate: roles(
		entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleCoordinador, entity.RoleAsistente,
	),
	ActionScheduleUpdate: roles(
		entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleCoordinador, entity.RoleAsistente,
	),
	ActionScheduleComplete: roles(
		entity.RoleDocente, entity.RoleAdmin, entity.RoleSuperadmin,
	),
	ActionScheduleDelete: roles(entity.RoleAdmin, entity.RoleSuperadmin),
	ActionReportRead:     roles(entity.RoleAdmin, entity.RoleSuperadmin),
	ActionGroupCreate: roles(
		entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleCoordinador,
	),
	ActionSubjectCreate: roles(
		entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleCoordinador,
	),
	ActionUserCreate: roles(entity.RoleAdmin, entity.RoleSuperadmin),
	ActionUserUpdate: roles(entity.RoleAdmin, entity.RoleSuperadmin),
}

func roles(rs ...string) map[string]bool {
	m := make(map[string]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// Can indica si el rol puede ejecutar la acción.
func Can(role string, action Action) bool {
	allowed, ok := table[action]
	if !ok {
		return false
	}
	return allowed[role]
}
