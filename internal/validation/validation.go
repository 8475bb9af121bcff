// Package validation acumula errores por campo con un código legible por
// máquina. Nunca corta el flujo: el caller junta cero o más errores y decide
// si aborta el guardado (cualquier error presente => abortar y redisplay).
package validation

import (
	"fmt"
	"strings"
)

// Code es la razón del rechazo, estable para clientes.
type Code string

const (
	CodeRequired      Code = "required"
	CodeInvalidFormat Code = "invalid-format"
	CodeDuplicate     Code = "duplicate"
	CodeFutureDate    Code = "future-date"
	CodeNotFound      Code = "not-found"
)

// FieldError es un error atado a un campo puntual del input.
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Errors es la lista acumulada. Implementa error para poder viajar por las
// firmas (Service devuelve error; el handler la recupera con errors.As).
type Errors []FieldError

// Add agrega un error de campo. Safe sobre receiver puntero nil-slice.
func (e *Errors) Add(field string, code Code, message string) {
	*e = append(*e, FieldError{Field: field, Code: code, Message: message})
}

// Required agrega un error "required" si el valor viene en blanco.
func (e *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, CodeRequired, "must not be blank")
	}
}

// Any indica si hay al menos un error acumulado.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Field devuelve el primer error para un campo (o false).
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Code))
	}
	return "validation: " + strings.Join(parts, ", ")
}
