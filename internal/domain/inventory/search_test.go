package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dulceria-api/internal/domain"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
	"github.com/tu-usuario/dulceria-api/internal/domain/inventory"
)

func catalog() []*entity.Sweet {
	return []*entity.Sweet{
		{ID: "1", Name: "Chocolate Bar", Category: "Chocolate", Price: decimal.NewFromFloat(2.99), Quantity: 10},
		{ID: "2", Name: "Chocolate Truffle", Category: "Chocolate", Price: decimal.NewFromFloat(5.50), Quantity: 3},
		{ID: "3", Name: "Gomitas de fresa", Category: "Gomas", Price: decimal.NewFromFloat(1.20), Quantity: 0},
		{ID: "4", Name: "Caramelo de café", Category: "Caramelos", Price: decimal.NewFromFloat(0.80), Quantity: 50},
	}
}

func ids(sweets []*entity.Sweet) []string {
	out := make([]string, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, s.ID)
	}
	return out
}

func TestFilter_SinFiltrosPasanTodos(t *testing.T) {
	matched, err := inventory.Filter(catalog(), inventory.Filters{})
	require.NoError(t, err)
	assert.Len(t, matched, 4)
}

func TestFilter_NombreCaseInsensitive(t *testing.T) {
	matched, err := inventory.Filter(catalog(), inventory.Filters{Name: "chocolate"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, ids(matched))
}

func TestFilter_CategoriaSubstring(t *testing.T) {
	matched, err := inventory.Filter(catalog(), inventory.Filters{Category: "goma"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3"}, ids(matched))
}

// Cotas inclusivas de precio, combinadas con AND con el resto de filtros.
func TestFilter_RangoDePrecioYAND(t *testing.T) {
	min := decimal.NewFromFloat(1.20)
	max := decimal.NewFromFloat(2.99)
	matched, err := inventory.Filter(catalog(), inventory.Filters{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids(matched), "las cotas son inclusivas")

	matched, err = inventory.Filter(catalog(), inventory.Filters{Name: "chocolate", MaxPrice: &max})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1"}, ids(matched), "los filtros presentes se combinan con AND")
}

// Idempotencia: llamadas repetidas con los mismos filtros sobre el mismo
// catálogo devuelven el mismo conjunto.
func TestFilter_Idempotente(t *testing.T) {
	all := catalog()
	f := inventory.Filters{Category: "Chocolate"}

	first, err := inventory.Filter(all, f)
	require.NoError(t, err)
	second, err := inventory.Filter(all, f)
	require.NoError(t, err)

	assert.ElementsMatch(t, ids(first), ids(second))
}

func TestFilter_CotasMalFormadas(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	_, err := inventory.Filter(catalog(), inventory.Filters{MinPrice: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(5)
	_, err = inventory.Filter(catalog(), inventory.Filters{MinPrice: &min, MaxPrice: &max})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
