package dto

import "github.com/shopspring/decimal"

// ProductMarginDTO desempeño de un producto sobre las ventas COMPLETE.
// El costo usa el costo de compra vigente del producto, no el histórico
// al momento de cada venta.
type ProductMarginDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	QtySold   int             `json:"qtySold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct decimal.Decimal `json:"marginPct"` // 0 cuando Revenue es 0, nunca división por cero
}
