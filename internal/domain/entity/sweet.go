package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de Quantity. No se persisten: son observacionales.
const (
	StockStateInStock    = "IN_STOCK"
	StockStateOutOfStock = "OUT_OF_STOCK"
)

// Sweet representa un dulce del catálogo. Quantity nunca puede ser negativa;
// esa invariante la garantiza exclusivamente el motor de inventario, nunca
// escrituras directas al store.
type Sweet struct {
	ID          string
	Name        string          // 1..100 caracteres
	Category    string          // 1..50 caracteres
	Price       decimal.Decimal // > 0
	Quantity    int             // >= 0
	Description string          // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockState devuelve el estado derivado del stock.
func (s *Sweet) StockState() string {
	if s.Quantity > 0 {
		return StockStateInStock
	}
	return StockStateOutOfStock
}
