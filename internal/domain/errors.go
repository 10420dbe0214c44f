package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada uno se recupera en el
// borde del flujo y se traduce a un mensaje para el usuario; ninguno deja el
// borrador o el almacén a medio actualizar.
var (
	ErrPrecondition = errors.New("datos del borrador incompletos")
	ErrAllocation   = errors.New("no se pudo asignar el número de factura")
	ErrExport       = errors.New("exportación del documento fallida")
	ErrNotFound     = errors.New("factura no encontrada")
	ErrInvalidInput = errors.New("entrada inválida")
)
