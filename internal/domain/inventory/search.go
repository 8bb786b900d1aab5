package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/dulceria-api/internal/domain"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
)

// Filters criterios opcionales de búsqueda. Todos los presentes se combinan
// con AND; sin filtros, todos los items pasan.
type Filters struct {
	Name     string // substring, case-insensitive
	Category string // substring, case-insensitive
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Validate rechaza cotas de precio mal formadas.
func (f Filters) Validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return fmt.Errorf("%w: min_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return fmt.Errorf("%w: max_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return fmt.Errorf("%w: min_price no puede ser mayor que max_price", domain.ErrInvalidInput)
	}
	return nil
}

// Match evalúa los filtros contra un Sweet.
func (f Filters) Match(s *entity.Sweet) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && s.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && s.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Filter aplica los filtros sobre una secuencia. Cada llamada re-evalúa desde
// cero (sin iteradores compartidos), así que con el mismo input y los mismos
// filtros el resultado es idéntico.
func Filter(all []*entity.Sweet, f Filters) ([]*entity.Sweet, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	matched := make([]*entity.Sweet, 0, len(all))
	for _, s := range all {
		if f.Match(s) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}
