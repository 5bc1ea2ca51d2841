package httperr

import "errors"

// ======================================================
// ERRORES DE NEGOCIO
// ======================================================
//
// ValidationError: la entrada del caller viola una precondición.
// ConflictError: el estado cambió entre lectura y escritura (carrera
// entre "slot mostrado libre" y "slot ya reservado"). El caller debe
// refrescar la disponibilidad y volver a intentar.

type ValidationError struct {
	Code string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return ValidationError{Code: code}
}

func IsValidation(err error, code string) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

type ConflictError struct {
	Code string
}

func (e ConflictError) Error() string {
	return e.Code
}

func ErrConflict(code string) error {
	return ConflictError{Code: code}
}

func AsConflict(err error) (ConflictError, bool) {
	var ce ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
