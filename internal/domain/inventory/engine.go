// Package inventory contiene el motor de inventario: lógica de decisión pura
// sobre snapshots de Sweet. Ninguna función hace I/O ni guarda estado entre
// llamadas; el caller lee el snapshot, invoca el motor y escribe el nuevo
// estado bajo exclusión mutua por id (ver catalog.TxRunner).
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/dulceria-api/internal/domain"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
)

// Límites de validación para Sweet.
const (
	MaxNameLen     = 100
	MaxCategoryLen = 50
)

// CreateSpec campos para crear un Sweet. El ID lo asigna el store, no el motor.
type CreateSpec struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
}

// Patch actualización parcial: un slot opcional por campo mutable.
// Los slots nil quedan intactos; los presentes se validan con los mismos
// límites que la creación.
type Patch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Quantity    *int
	Description *string
}

// PurchaseResult resultado de una compra exitosa.
type PurchaseResult struct {
	Quantity    int // unidades vendidas
	NewQuantity int // stock restante
}

// RestockResult resultado de una reposición exitosa.
type RestockResult struct {
	Quantity    int // unidades añadidas
	NewQuantity int // stock resultante
}

// Create valida el spec y devuelve un Sweet nuevo sin ID ni timestamps
// (los asigna el caller junto con el store). Requiere identidad activa.
func Create(spec CreateSpec, ident entity.Identity) (*entity.Sweet, error) {
	if !ident.IsActive {
		return nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	if err := validateName(spec.Name); err != nil {
		return nil, err
	}
	if err := validateCategory(spec.Category); err != nil {
		return nil, err
	}
	if err := validatePrice(spec.Price); err != nil {
		return nil, err
	}
	if spec.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	return &entity.Sweet{
		Name:        spec.Name,
		Category:    spec.Category,
		Price:       spec.Price,
		Quantity:    spec.Quantity,
		Description: spec.Description,
	}, nil
}

// Apply aplica un patch parcial sobre el snapshot actual y devuelve el nuevo
// estado. El snapshot de entrada nunca se modifica.
func Apply(current *entity.Sweet, patch Patch, ident entity.Identity) (*entity.Sweet, error) {
	if !ident.IsActive {
		return nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	next := *current
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		next.Name = *patch.Name
	}
	if patch.Category != nil {
		if err := validateCategory(*patch.Category); err != nil {
			return nil, err
		}
		next.Category = *patch.Category
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
		next.Price = *patch.Price
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
		}
		next.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	return &next, nil
}

// Purchase decrementa el stock. Garantiza que la cantidad resultante nunca es
// negativa: si se pide más de lo disponible devuelve InsufficientStockError
// con la cantidad disponible y deja el snapshot intacto.
func Purchase(current *entity.Sweet, quantity int, ident entity.Identity) (*entity.Sweet, *PurchaseResult, error) {
	if !ident.IsActive {
		return nil, nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	if current == nil {
		return nil, nil, domain.ErrNotFound
	}
	if quantity < 1 {
		return nil, nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}
	if quantity > current.Quantity {
		return nil, nil, &domain.InsufficientStockError{Available: current.Quantity}
	}
	next := *current
	next.Quantity = current.Quantity - quantity
	return &next, &PurchaseResult{Quantity: quantity, NewQuantity: next.Quantity}, nil
}

// Restock incrementa el stock, sin tope superior. Solo admin activo.
func Restock(current *entity.Sweet, quantity int, ident entity.Identity) (*entity.Sweet, *RestockResult, error) {
	if !ident.IsActive {
		return nil, nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	if !ident.IsAdmin {
		return nil, nil, fmt.Errorf("%w: requiere rol admin", domain.ErrForbidden)
	}
	if current == nil {
		return nil, nil, domain.ErrNotFound
	}
	if quantity < 1 {
		return nil, nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}
	next := *current
	next.Quantity = current.Quantity + quantity
	return &next, &RestockResult{Quantity: quantity, NewQuantity: next.Quantity}, nil
}

// Delete decide si el caller puede eliminar el registro. Solo admin activo.
// El borrado físico lo ejecuta el caller.
func Delete(current *entity.Sweet, ident entity.Identity) error {
	if !ident.IsActive {
		return fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	if !ident.IsAdmin {
		return fmt.Errorf("%w: requiere rol admin", domain.ErrForbidden)
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name supera %d caracteres", domain.ErrInvalidInput, MaxNameLen)
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: category es requerida", domain.ErrInvalidInput)
	}
	if len(category) > MaxCategoryLen {
		return fmt.Errorf("%w: category supera %d caracteres", domain.ErrInvalidInput, MaxCategoryLen)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: price debe ser mayor que 0", domain.ErrInvalidInput)
	}
	return nil
}
