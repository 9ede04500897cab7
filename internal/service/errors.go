package service

import (
	"errors"
	"fmt"
)

// ErrNoEncontrado marks a lookup for a record that does not exist or was
// soft-deleted. Handlers map it to HTTP 404.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ErrValidacion is a business-rule violation. Handlers map it to HTTP 400.
type ErrValidacion struct{ Detalle string }

func (e *ErrValidacion) Error() string { return e.Detalle }

func validacion(format string, args ...any) error {
	return &ErrValidacion{Detalle: fmt.Sprintf(format, args...)}
}
