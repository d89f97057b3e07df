// Package inventory implementa el ajustador de stock y las vistas del libro
// de movimientos. Toda mutación de stock del sistema pasa por AdjustStock:
// es el único embudo que toca Product.Stock y el que garantiza que cada
// cambio quede emparejado con exactamente un movimiento en el libro.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/techstyle-pos/internal/domain"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

// PlaceholderProductName etiqueta de respaldo cuando un movimiento referencia
// un producto ya eliminado.
const PlaceholderProductName = "Producto eliminado"

// UseCase ajusta stock y registra movimientos.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          log.Component("inventory"),
	}
}

// AdjustInput entrada de AdjustStock. Quantity siempre positivo; el signo del
// delta lo determina Type. ReferenceID enlaza el movimiento con la venta que
// lo originó (vacío en movimientos manuales).
type AdjustInput struct {
	ProductID   string
	Quantity    int
	Type        entity.MovementType
	Note        string
	ReferenceID string
}

// AdjustStock aplica el movimiento sobre el stock del producto con piso en
// cero: nuevo stock = max(0, stock + delta con signo). El movimiento se
// registra siempre al frente del libro, incluso cuando el piso recortó el
// resultado o cuando ProductID ya no resuelve (la actualización de stock se
// omite, la auditoría se conserva).
func (uc *UseCase) AdjustStock(in AdjustInput) error {
	if in.Quantity <= 0 {
		return fmt.Errorf("inventory: cantidad %d: %w", in.Quantity, domain.ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("inventory: tipo %q: %w", in.Type, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return fmt.Errorf("inventory: buscar producto: %w", err)
	}

	if product != nil {
		newStock := product.Stock + in.Type.Sign()*in.Quantity
		if newStock < 0 {
			newStock = 0
		}
		product.Stock = newStock
		if err := uc.productRepo.Update(product); err != nil {
			return fmt.Errorf("inventory: actualizar stock: %w", err)
		}
	} else {
		uc.log.Warn().
			Str("product_id", in.ProductID).
			Str("type", string(in.Type)).
			Msg("movimiento sobre producto inexistente; stock omitido, auditoría conservada")
	}

	movement := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Date:        time.Now(),
		Note:        in.Note,
		ReferenceID: in.ReferenceID,
	}
	if err := uc.movementRepo.Prepend(movement); err != nil {
		return fmt.Errorf("inventory: registrar movimiento: %w", err)
	}

	uc.log.Debug().
		Str("product_id", in.ProductID).
		Str("type", string(in.Type)).
		Int("quantity", in.Quantity).
		Msg("movimiento registrado")
	return nil
}

// MovementView movimiento resuelto para visualización: el nombre del producto
// se busca por id y degrada a la etiqueta de respaldo si la referencia quedó
// colgante.
type MovementView struct {
	Movement    *entity.InventoryMovement
	ProductName string
}

// ListMovements devuelve el libro completo (más-reciente-primero) resuelto
// para visualización.
func (uc *UseCase) ListMovements() ([]MovementView, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, fmt.Errorf("inventory: listar movimientos: %w", err)
	}
	return uc.resolve(movements)
}

// ListMovementsByProduct devuelve el historial de un producto, también cuando
// el producto ya fue eliminado (el historial nunca se corrompe ni se pierde).
func (uc *UseCase) ListMovementsByProduct(productID string) ([]MovementView, error) {
	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("inventory: listar movimientos de producto: %w", err)
	}
	return uc.resolve(movements)
}

func (uc *UseCase) resolve(movements []*entity.InventoryMovement) ([]MovementView, error) {
	views := make([]MovementView, 0, len(movements))
	for _, m := range movements {
		name := PlaceholderProductName
		if p, err := uc.productRepo.GetByID(m.ProductID); err == nil && p != nil {
			name = p.Name
		}
		views = append(views, MovementView{Movement: m, ProductName: name})
	}
	return views, nil
}
