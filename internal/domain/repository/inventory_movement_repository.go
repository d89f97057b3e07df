package repository

import "github.com/tu-usuario/techstyle-pos/internal/domain/entity"

// InventoryMovementRepository define el puerto del libro de movimientos.
// El libro es append-only y se mantiene en orden más-reciente-primero:
// Prepend inserta al frente y nada lo edita ni lo elimina después.
type InventoryMovementRepository interface {
	Prepend(movement *entity.InventoryMovement) error
	List() ([]*entity.InventoryMovement, error)
	ListByProduct(productID string) ([]*entity.InventoryMovement, error)
}
