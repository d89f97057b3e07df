package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago de una venta.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "EFECTIVO"
	PaymentYape PaymentMethod = "YAPE" // billetera móvil por QR
	PaymentPlin PaymentMethod = "PLIN" // billetera móvil por QR
)

// SaleStatus estado de una venta. Máquina de estados mínima:
// COMPLETE → ANNULLED (terminal); ninguna otra transición es legal.
type SaleStatus string

const (
	SaleStatusComplete SaleStatus = "COMPLETE"
	SaleStatusAnnulled SaleStatus = "ANNULLED"
)

// SaleItem línea de venta. Name, Price y Subtotal son instantáneas al momento
// de la venta: cambios posteriores al producto no alteran ventas históricas.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"` // Price × Quantity
}

// Sale agregado de venta. Inmutable salvo la transición única de estado
// COMPLETE → ANNULLED; anular una venta ya anulada es un no-op.
// TotalProfit se calcula una sola vez al registrar la venta, con el costo de
// compra vigente en ese momento (no se recalcula retroactivamente).
type Sale struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	Date          time.Time       `json:"date"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	Customer      *CustomerData   `json:"customer,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        SaleStatus      `json:"status"`
	SellerName    string          `json:"sellerName"`
}

// Annullable reporta si la venta admite la transición a ANNULLED.
func (s *Sale) Annullable() bool {
	return s.Status == SaleStatusComplete
}
