package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidFormat     = errors.New("formato de archivo inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// FieldError describe un campo rechazado por las reglas de validación.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier FieldError.
type FieldError struct {
	Field  string
	Reason string
}

// NewFieldError construye un FieldError.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// FormatError describe por qué una fuente de importación no se puede procesar.
type FormatError struct {
	Row    int // 0 cuando el problema es global (archivo, cabecera)
	Column string
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("fila %d: falta la columna %q", e.Row, e.Column)
	case e.Column != "":
		return fmt.Sprintf("columna %q: %s", e.Column, e.Reason)
	default:
		return e.Reason
	}
}

// Unwrap permite errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }
