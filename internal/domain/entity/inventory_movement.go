package entity

import "time"

// MovementType clasifica un movimiento de inventario y determina el signo
// del delta sobre el stock.
type MovementType string

// Tipos de movimiento. IN y ANNULMENT suman stock; OUT y SALE restan.
const (
	MovementTypeIN        MovementType = "IN"        // ingreso manual (compra, importación)
	MovementTypeOUT       MovementType = "OUT"       // salida manual (merma, ajuste)
	MovementTypeSALE      MovementType = "SALE"      // descuento por venta completada
	MovementTypeANNULMENT MovementType = "ANNULMENT" // extorno por anulación de venta
)

// Valid reporta si el tipo es uno de los cuatro conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeSALE, MovementTypeANNULMENT:
		return true
	}
	return false
}

// Sign devuelve +1 para movimientos que suman stock y -1 para los que restan.
func (t MovementType) Sign() int {
	if t == MovementTypeIN || t == MovementTypeANNULMENT {
		return 1
	}
	return -1
}

// InventoryMovement es una entrada del libro de movimientos: append-only,
// nunca se edita ni se elimina una vez creada. Cada cambio de stock del
// sistema tiene exactamente un movimiento asociado (invariante de auditoría),
// incluso cuando ProductID ya no resuelve a un producto existente.
type InventoryMovement struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"productId"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"` // siempre positivo; el signo lo da Type
	Date        time.Time    `json:"date"`
	Note        string       `json:"note,omitempty"`
	ReferenceID string       `json:"referenceId,omitempty"`
}

// SignedQuantity devuelve el delta con signo que el movimiento representa
// (antes de aplicar el piso de no-negatividad).
func (m *InventoryMovement) SignedQuantity() int {
	return m.Type.Sign() * m.Quantity
}
