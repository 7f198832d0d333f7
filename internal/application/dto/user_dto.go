package dto

import "time"

// CreateUserRequest alta de usuario (solo roles de administración).
type CreateUserRequest struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=SUPERADMIN ADMIN DIRECTOR COORDINADOR ASISTENTE DOCENTE"`
}

// UpdateUserRequest actualización parcial de usuario. La contraseña se cambia
// por un flujo aparte; aquí solo datos de perfil y estado.
type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=SUPERADMIN ADMIN DIRECTOR COORDINADOR ASISTENTE DOCENTE"`
	IsActive *bool   `json:"isActive"`
}

// UserResponse proyección pública de un usuario; nunca incluye credenciales.
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeacherResponse proyección mínima para formularios de cronogramas.
type TeacherResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}
