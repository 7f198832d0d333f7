package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin  = "SUPERADMIN"
	RoleAdmin       = "ADMIN"
	RoleDirector    = "DIRECTOR"
	RoleCoordinador = "COORDINADOR"
	RoleAsistente   = "ASISTENTE"
	RoleDocente     = "DOCENTE"
)

// AllRoles lista cerrada de roles del sistema.
var AllRoles = []string{
	RoleSuperadmin, RoleAdmin, RoleDirector,
	RoleCoordinador, RoleAsistente, RoleDocente,
}

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. El núcleo de cronogramas lo trata
// como dato de referencia (id + rol + nombre); las credenciales solo las usa
// el subsistema de autenticación.
type User struct {
	ID           string
	FullName     string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
