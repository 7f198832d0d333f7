package dto

import "time"

// CreateGroupRequest alta de grupo.
type CreateGroupRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=120"`
	Semester    int    `json:"semester" validate:"omitempty,min=1,max=12"`
	Year        int    `json:"year" validate:"required,min=2020,max=2100"`
	MaxStudents int    `json:"maxStudents" validate:"omitempty,min=1,max=500"`
}

// UpdateGroupRequest actualización parcial de grupo.
type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Semester    *int    `json:"semester" validate:"omitempty,min=1,max=12"`
	Year        *int    `json:"year" validate:"omitempty,min=2020,max=2100"`
	MaxStudents *int    `json:"maxStudents" validate:"omitempty,min=1,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// GroupResponse proyección de un grupo.
type GroupResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Semester    int       `json:"semester"`
	Year        int       `json:"year"`
	MaxStudents int       `json:"maxStudents"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
