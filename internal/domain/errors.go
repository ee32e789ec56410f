package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrForeignKey   = errors.New("referencia a un registro inexistente")
)

// Errores de sincronización. Cualquiera de ellos aborta la corrida completa;
// los problemas de una sola fila se cuentan, no se devuelven.
var (
	ErrSourceUnavailable = errors.New("origen de datos no disponible")
	ErrEmptySource       = errors.New("la hoja no tiene filas de datos")
	ErrMissingKeyColumn  = errors.New("la hoja no tiene la columna de identificación")
	ErrCommitFailed      = errors.New("no se pudo confirmar la transacción")
)
