package sales

import "github.com/tu-usuario/techstyle-pos/internal/application/inventory"

// StockAdjuster contrato hacia el ajustador de stock. El registrador de
// ventas no es dueño de los productos: toda mutación de stock la solicita a
// través de este puerto.
type StockAdjuster interface {
	AdjustStock(in inventory.AdjustInput) error
}
