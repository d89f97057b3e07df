// Package sales implementa el registrador de ventas: arma el agregado Sale a
// partir de un carrito, calcula totales y utilidad, asigna número de pedido
// por canal y dispara los ajustes de stock correspondientes al completar o
// anular una venta.
package sales

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/application/inventory"
	"github.com/tu-usuario/techstyle-pos/internal/domain"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/pricing"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

// Channel canal de venta. Determina el prefijo del número de pedido, el
// nombre de vendedor y si aplica costo de envío.
type Channel string

const (
	// ChannelStorefront checkout de la tienda virtual: cliente obligatorio,
	// envío con promoción escalonada.
	ChannelStorefront Channel = "TIENDA"
	// ChannelPOS punto de venta interno: cliente opcional, sin envío.
	ChannelPOS Channel = "POS"
)

func (c Channel) orderPrefix() string {
	if c == ChannelStorefront {
		return "TS"
	}
	return "VENTA"
}

// Config parámetros del registrador de ventas.
type Config struct {
	ShippingFee        decimal.Decimal // tarifa plana de envío (canal tienda)
	FreeShippingMinQty int             // unidades desde las que el envío es gratis
	SellerStore        string          // vendedor del canal tienda virtual
	SellerPOS          string          // vendedor del punto de venta
}

// UseCase registrador de ventas.
type UseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	adjuster    StockAdjuster
	cfg         Config
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	adjuster StockAdjuster,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		adjuster:    adjuster,
		cfg:         cfg,
		log:         log.Component("sales"),
	}
}

// CartItem línea del carrito tal como llega del canal: producto y cantidad.
// Nombre y precio se capturan como instantánea dentro de CompleteSale.
type CartItem struct {
	ProductID string
	Quantity  int
}

// CompleteSaleInput entrada de CompleteSale.
type CompleteSaleInput struct {
	Items         []CartItem
	Customer      *entity.CustomerData
	PaymentMethod entity.PaymentMethod
	Channel       Channel
}

// CompleteSale valida el carrito, arma la venta con instantáneas de nombre y
// precio, calcula total y utilidad, la persiste con estado COMPLETE y
// descuenta stock línea por línea vía el ajustador (tipo SALE, nota con el
// número de pedido). Devuelve la venta finalizada para el comprobante.
//
// Los totales se calculan del estado del carrito recibido, antes de que el
// canal lo vacíe. TotalProfit = Σ(precio − costo de compra) × cantidad, con
// el costo de compra vigente al momento de la venta; el envío no forma parte
// de la utilidad.
func (uc *UseCase) CompleteSale(in CompleteSaleInput) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.Channel == ChannelStorefront && (in.Customer == nil || !in.Customer.Complete()) {
		return nil, domain.ErrMissingCustomer
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	profit := decimal.Zero
	for _, ci := range in.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("sales: cantidad %d: %w", ci.Quantity, domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("sales: buscar producto: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("sales: producto %s: %w", ci.ProductID, domain.ErrNotFound)
		}
		item := entity.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  ci.Quantity,
			Price:     product.SalePrice,
			Subtotal:  product.SalePrice.Mul(decimal.NewFromInt(int64(ci.Quantity))),
		}
		items = append(items, item)
		profit = profit.Add(pricing.LineProfit(item, product.PurchasePrice))
	}

	total := pricing.Subtotal(items)
	if in.Channel == ChannelStorefront {
		total = total.Add(pricing.ShippingCost(items, uc.cfg.ShippingFee, uc.cfg.FreeShippingMinQty))
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		OrderNumber:   orderNumber(in.Channel, now),
		Date:          now,
		Items:         items,
		Total:         total,
		TotalProfit:   profit,
		Customer:      in.Customer,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.SaleStatusComplete,
		SellerName:    uc.sellerName(in.Channel),
	}

	if err := uc.saleRepo.Prepend(sale); err != nil {
		return nil, fmt.Errorf("sales: registrar venta: %w", err)
	}

	for _, item := range sale.Items {
		err := uc.adjuster.AdjustStock(inventory.AdjustInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Type:        entity.MovementTypeSALE,
			Note:        "Venta " + sale.OrderNumber,
			ReferenceID: sale.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("sales: descontar stock de %s: %w", item.ProductID, err)
		}
	}

	uc.log.Info().
		Str("order_number", sale.OrderNumber).
		Str("channel", string(in.Channel)).
		Str("total", sale.Total.StringFixed(2)).
		Int("items", len(sale.Items)).
		Msg("venta completada")
	return sale, nil
}

// AnnulSale anula una venta: transición única COMPLETE → ANNULLED y extorno
// del stock de cada línea original (tipo ANNULMENT). Idempotente: venta
// inexistente o ya anulada es un no-op silencioso, no un error.
func (uc *UseCase) AnnulSale(saleID string) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return fmt.Errorf("sales: buscar venta: %w", err)
	}
	if sale == nil || !sale.Annullable() {
		uc.log.Debug().Str("sale_id", saleID).Msg("anulación sin efecto")
		return nil
	}

	if err := uc.saleRepo.UpdateStatus(sale.ID, entity.SaleStatusAnnulled); err != nil {
		return fmt.Errorf("sales: anular venta: %w", err)
	}

	for _, item := range sale.Items {
		err := uc.adjuster.AdjustStock(inventory.AdjustInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Type:        entity.MovementTypeANNULMENT,
			Note:        "Extorno por Anulación " + sale.OrderNumber,
			ReferenceID: sale.ID,
		})
		if err != nil {
			return fmt.Errorf("sales: extornar stock de %s: %w", item.ProductID, err)
		}
	}

	uc.log.Info().Str("order_number", sale.OrderNumber).Msg("venta anulada")
	return nil
}

// Quote calcula los totales vigentes del carrito (subtotal, envío, total)
// sin efectos: lo usa el checkout de la tienda en cada lectura.
func (uc *UseCase) Quote(cart []CartItem) (pricing.CartTotals, error) {
	items := make([]entity.SaleItem, 0, len(cart))
	for _, ci := range cart {
		product, err := uc.productRepo.GetByID(ci.ProductID)
		if err != nil {
			return pricing.CartTotals{}, fmt.Errorf("sales: buscar producto: %w", err)
		}
		if product == nil {
			return pricing.CartTotals{}, fmt.Errorf("sales: producto %s: %w", ci.ProductID, domain.ErrNotFound)
		}
		items = append(items, entity.SaleItem{
			ProductID: product.ID,
			Quantity:  ci.Quantity,
			Price:     product.SalePrice,
			Subtotal:  product.SalePrice.Mul(decimal.NewFromInt(int64(ci.Quantity))),
		})
	}
	return pricing.Totals(items, uc.cfg.ShippingFee, uc.cfg.FreeShippingMinQty), nil
}

// ListSales devuelve el historial, más-reciente-primero.
func (uc *UseCase) ListSales() ([]*entity.Sale, error) {
	return uc.saleRepo.List()
}

func (uc *UseCase) sellerName(c Channel) string {
	if c == ChannelStorefront {
		return uc.cfg.SellerStore
	}
	return uc.cfg.SellerPOS
}

// orderNumber genera el correlativo por canal: prefijo del canal más los
// últimos seis dígitos del timestamp en milisegundos.
func orderNumber(c Channel, t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return c.orderPrefix() + "-" + ms[len(ms)-6:]
}
