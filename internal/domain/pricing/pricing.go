// Package pricing implementa el motor de precios del pedido (servicio de
// dominio): subtotal del carrito, costo de envío con promoción escalonada y
// descomposición de IGV para la representación impresa. Funciones puras, sin
// efectos; se recalculan desde el estado vigente del carrito en cada lectura.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
)

// CartTotals resultado del cálculo de totales de un carrito.
type CartTotals struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
	FreeShipping bool // la promoción de envío gratis aplicó
}

// TaxBreakdown descomposición de un total con impuesto incluido.
// Solo para visualización en el comprobante; no se almacena en la venta.
type TaxBreakdown struct {
	Base decimal.Decimal // base imponible = total / (1 + tasa)
	Tax  decimal.Decimal // impuesto = total − base
}

// Subtotal suma los subtotales de línea del carrito.
func Subtotal(items []entity.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal)
	}
	return sum
}

// TotalQuantity suma las unidades del carrito (para la promoción de envío).
func TotalQuantity(items []entity.SaleItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// ShippingCost devuelve la tarifa plana de envío, o cero cuando el carrito
// alcanza freeAtQty unidades (promoción "a partir del 3er producto, envío
// gratis"). Un carrito vacío no paga envío. Solo aplica al canal de tienda
// virtual; el punto de venta interno no tiene concepto de envío.
func ShippingCost(items []entity.SaleItem, fee decimal.Decimal, freeAtQty int) decimal.Decimal {
	qty := TotalQuantity(items)
	if qty == 0 || qty >= freeAtQty {
		return decimal.Zero
	}
	return fee
}

// Totals calcula subtotal, envío y total del carrito bajo la promoción escalonada.
func Totals(items []entity.SaleItem, fee decimal.Decimal, freeAtQty int) CartTotals {
	subtotal := Subtotal(items)
	shipping := ShippingCost(items, fee, freeAtQty)
	return CartTotals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal.Add(shipping),
		FreeShipping: TotalQuantity(items) >= freeAtQty,
	}
}

// Tax descompone un total con impuesto incluido según la tasa dada
// (IGV 18% en Perú): base = total / (1+r), impuesto = total − base.
func Tax(total, rate decimal.Decimal) TaxBreakdown {
	base := total.Div(decimal.NewFromInt(1).Add(rate)).Round(2)
	return TaxBreakdown{
		Base: base,
		Tax:  total.Sub(base),
	}
}

// LineProfit utilidad de una línea: (precio de venta − costo de compra) × cantidad.
// Usa el costo de compra vigente al momento de la venta.
func LineProfit(item entity.SaleItem, purchasePrice decimal.Decimal) decimal.Decimal {
	return item.Price.Sub(purchasePrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
}
