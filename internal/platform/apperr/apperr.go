package apperr

// Error es el conjunto cerrado de fallas de dominio visibles por HTTP.
// Cada variante lleva su status y un name estable para el envelope
// (equivalente a las clases CustomError del servicio original).
type Error struct {
	Status  int
	Name    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest: input malformado o campo requerido ausente (400).
func BadRequest(msg string) *Error {
	return &Error{Status: 400, Name: "BadRequestError", Message: msg}
}

// NotFound: la entidad no existe (404).
func NotFound(msg string) *Error {
	return &Error{Status: 404, Name: "NotFoundError", Message: msg}
}

// Conflict: regla de negocio violada (ej: mascota ya adoptada).
// Ojo: el contrato HTTP lo expone como 400, no 409.
func Conflict(msg string) *Error {
	return &Error{Status: 400, Name: "ConflictError", Message: msg}
}

// Internal: falla no controlada (500). El detalle solo se expone en dev.
func Internal(msg string) *Error {
	return &Error{Status: 500, Name: "InternalServerError", Message: msg}
}
