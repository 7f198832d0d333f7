package dto

import "github.com/academisoft/cronograma-api/pkg/validation"

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de
// validación (lista campo → mensaje).
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}
