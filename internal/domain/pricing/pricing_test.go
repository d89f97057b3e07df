package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/pricing"
)

var (
	testFee       = decimal.NewFromInt(15)
	testFreeAtQty = 3
	testTaxRate   = decimal.RequireFromString("0.18")
)

func item(price int64, qty int) entity.SaleItem {
	p := decimal.NewFromInt(price)
	return entity.SaleItem{
		Quantity: qty,
		Price:    p,
		Subtotal: p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// TestTotals_DosUnidadesPaganEnvio: con 2 unidades el envío es la tarifa plana.
func TestTotals_DosUnidadesPaganEnvio(t *testing.T) {
	totals := pricing.Totals([]entity.SaleItem{item(100, 2)}, testFee, testFreeAtQty)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal = 100 × 2")
	assert.True(t, totals.ShippingCost.Equal(testFee), "con 2 unidades se cobra la tarifa plana de envío")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(215)))
	assert.False(t, totals.FreeShipping)
}

// TestTotals_TresUnidadesEnvioGratis: a partir de la 3ra unidad el envío se exonera.
func TestTotals_TresUnidadesEnvioGratis(t *testing.T) {
	totals := pricing.Totals([]entity.SaleItem{item(100, 2), item(50, 1)}, testFee, testFreeAtQty)

	assert.True(t, totals.ShippingCost.IsZero(), "con 3 unidades el envío debe ser 0")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(250)))
	assert.True(t, totals.FreeShipping)
}

// TestTotals_CarritoVacio: carrito vacío no paga nada, tampoco envío.
func TestTotals_CarritoVacio(t *testing.T) {
	totals := pricing.Totals(nil, testFee, testFreeAtQty)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.ShippingCost.IsZero(), "un carrito vacío no paga envío")
	assert.True(t, totals.Total.IsZero())
}

// TestTax_Descomposicion118: un total de 118 con IGV 18% se descompone en
// base 100 e impuesto 18.
func TestTax_Descomposicion118(t *testing.T) {
	breakdown := pricing.Tax(decimal.NewFromInt(118), testTaxRate)

	assert.True(t, breakdown.Base.Equal(decimal.NewFromInt(100)),
		"base imponible = total / 1.18, fue %s", breakdown.Base)
	assert.True(t, breakdown.Tax.Equal(decimal.NewFromInt(18)),
		"IGV = total − base, fue %s", breakdown.Tax)
}

// TestTax_BaseMasImpuestoEsTotal: la descomposición siempre reconstruye el total.
func TestTax_BaseMasImpuestoEsTotal(t *testing.T) {
	total := decimal.RequireFromString("5515.00")
	breakdown := pricing.Tax(total, testTaxRate)

	assert.True(t, breakdown.Base.Add(breakdown.Tax).Equal(total),
		"base + impuesto debe ser exactamente el total")
}

// TestLineProfit: (precio − costo) × cantidad.
func TestLineProfit(t *testing.T) {
	profit := pricing.LineProfit(item(100, 2), decimal.NewFromInt(60))

	assert.True(t, profit.Equal(decimal.NewFromInt(80)),
		"2 unidades a 100 con costo 60 dejan 80 de utilidad, fue %s", profit)
}

// TestShippingCost_SoloDependeDeUnidades: el monto del carrito no afecta la
// promoción, solo las unidades.
func TestShippingCost_SoloDependeDeUnidades(t *testing.T) {
	caro := pricing.ShippingCost([]entity.SaleItem{item(5500, 1)}, testFee, testFreeAtQty)
	barato := pricing.ShippingCost([]entity.SaleItem{item(1, 3)}, testFee, testFreeAtQty)

	assert.True(t, caro.Equal(testFee), "1 unidad cara sigue pagando envío")
	assert.True(t, barato.IsZero(), "3 unidades baratas ya no pagan envío")
}
