package dto

import "time"

// CreateSubjectRequest alta de materia.
type CreateSubjectRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Code    string `json:"code" validate:"required,max=20"`
	Credits int    `json:"credits" validate:"min=0,max=20"`
}

// UpdateSubjectRequest actualización parcial de materia.
type UpdateSubjectRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Credits  *int    `json:"credits" validate:"omitempty,min=0,max=20"`
	IsActive *bool   `json:"isActive"`
}

// SubjectResponse proyección de una materia.
type SubjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Credits   int       `json:"credits"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
