package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSweetRequest entrada para crear un dulce.
type CreateSweetRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Category    string          `json:"category" validate:"required,min=1,max=50"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Description string          `json:"description"`
}

// UpdateSweetRequest actualización parcial: los campos ausentes (nil) no se tocan.
type UpdateSweetRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=50"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	Description *string          `json:"description"`
}

// SweetResponse salida de un dulce. StockState es derivado, nunca se persiste.
type SweetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	StockState  string          `json:"stock_state"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SweetListResponse lista paginada de dulces.
type SweetListResponse struct {
	Items []SweetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// PurchaseRequest entrada de compra. Si quantity viene en cero se asume 1.
type PurchaseRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// RestockRequest entrada de reposición (solo admin).
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// PurchaseResponse resultado de una compra.
type PurchaseResponse struct {
	Message           string `json:"message"`
	SweetID           string `json:"sweet_id"`
	SweetName         string `json:"sweet_name"`
	QuantityPurchased int    `json:"quantity_purchased"`
	RemainingStock    int    `json:"remaining_stock"`
}

// RestockResponse resultado de una reposición.
type RestockResponse struct {
	Message       string `json:"message"`
	SweetID       string `json:"sweet_id"`
	SweetName     string `json:"sweet_name"`
	QuantityAdded int    `json:"quantity_added"`
	NewStock      int    `json:"new_stock"`
}
