// Package validation envuelve go-playground/validator para producir errores
// de validación por campo (campo → mensaje) consumibles por la capa HTTP.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError señala un problema con un campo concreto de la petición.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error agrupa los problemas de una misma petición.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "entrada inválida"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "entrada inválida: " + strings.Join(parts, "; ")
}

// NewError construye un error de validación de un solo campo.
func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add anexa un problema de campo.
func (e *Error) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

var (
	once     sync.Once
	validate *validator.Validate
)

// instance inicializa el validador una sola vez; usa el nombre del tag json
// en los mensajes en lugar del nombre del campo Go.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct valida un DTO según sus tags `validate`. Devuelve *Error con la
// lista campo → mensaje, o nil si todo es válido.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewError("", err.Error())
	}
	out := &Error{}
	for _, fe := range verrs {
		out.Add(fe.Field(), messageFor(fe))
	}
	return out
}

// messageFor traduce el tag fallido a un mensaje legible en español.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es requerido"
	case "min":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("no puede exceder %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "oneof":
		return "valor inválido; permitidos: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "debe ser un UUID válido"
	case "email":
		return "debe ser un email válido"
	case "datetime":
		return "formato de fecha inválido, use YYYY-MM-DD"
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", fe.Param())
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
