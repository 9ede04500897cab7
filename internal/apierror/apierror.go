// Package apierror define la forma única de los cuerpos de error del API.
// Todo 4xx/5xx sale por aquí: el cliente recibe un detalle legible y los
// internos (SQL, stack traces) se quedan en los logs.
package apierror

// APIError es el sobre de error para respuestas con un solo detalle.
type APIError struct {
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

func New(detalle string) *APIError { return &APIError{Detail: detalle} }

// Interno es el cuerpo genérico de los 500; la causa real nunca viaja al
// cliente.
func Interno() *APIError { return New("Error interno del servidor") }

// ValidationError agrega el detalle por campo cuando fallan las reglas de
// binding, con la etiqueta de la regla violada como valor.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
