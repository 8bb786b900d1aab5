package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InsufficientStockError indica que la compra pide más unidades de las que hay.
// Conserva la cantidad disponible para que el mensaje la incluya y el caller
// pueda reintentar con una cantidad menor.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: solo hay %d unidades disponibles", e.Available)
}

// Is hace que errors.Is(err, ErrInsufficientStock) funcione sobre el tipo.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
