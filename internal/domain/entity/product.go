package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (tienda de electrónica, tenant único).
// Stock es un entero que nunca se observa negativo: el piso se aplica en el punto
// de mutación (caso de uso de inventario), no se valida después del hecho.
// CategoryID puede quedar colgante si la categoría se elimina; la resolución
// degrada a la etiqueta "Sin categoría", nunca a un fallo.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // costo de compra
	SalePrice     decimal.Decimal `json:"salePrice"`     // precio de venta al público
	Stock         int             `json:"stock"`
	MinStock      int             `json:"minStock"` // umbral de alerta de stock bajo
	ImageURL      string          `json:"imageUrl,omitempty"`
	Images        []string        `json:"images,omitempty"`
}

// LowStock indica si el producto está en o bajo su umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
