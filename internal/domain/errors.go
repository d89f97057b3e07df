package domain

import "errors"

// Errores de dominio (sin dependencias externas). Toda validación rechazada
// se expresa con uno de estos centinelas; nunca hay pánicos ni errores fatales
// en el alcance del sistema.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrMissingCustomer = errors.New("faltan datos del cliente")
)
