package repository

import "github.com/tu-usuario/techstyle-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas se listan más-reciente-primero. UpdateStatus es la única
// mutación admitida sobre una venta ya registrada.
type SaleRepository interface {
	Prepend(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	UpdateStatus(id string, status entity.SaleStatus) error
}
