package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/application/dto"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// MarginReportUseCase calcula el reporte de márgenes por producto sobre las
// ventas COMPLETE. El costo se valúa al costo de compra vigente del producto,
// no al histórico de cada venta; los productos que ya no existen en el
// catálogo no aparecen en el reporte.
type MarginReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewMarginReportUseCase construye el caso de uso.
func NewMarginReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *MarginReportUseCase {
	return &MarginReportUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// ProductMargins devuelve el desempeño por producto ordenado por utilidad
// descendente. Margen % = utilidad / ingresos; un producto sin ventas dentro
// del ranking reporta 0, nunca división por cero.
func (uc *MarginReportUseCase) ProductMargins() ([]dto.ProductMarginDTO, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("analytics: listar ventas: %w", err)
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("analytics: listar productos: %w", err)
	}

	type acc struct {
		name    string
		qty     int
		revenue decimal.Decimal
		cost    decimal.Decimal
	}
	data := make(map[string]*acc)
	var order []string

	productIx := make(map[string]*struct {
		name string
		cost decimal.Decimal
	}, len(products))
	for _, p := range products {
		productIx[p.ID] = &struct {
			name string
			cost decimal.Decimal
		}{name: p.Name, cost: p.PurchasePrice}
	}

	for _, s := range completeOnly(sales) {
		for _, item := range s.Items {
			p, ok := productIx[item.ProductID]
			if !ok {
				continue // producto eliminado: fuera del ranking
			}
			a, ok := data[item.ProductID]
			if !ok {
				a = &acc{name: p.name, revenue: decimal.Zero, cost: decimal.Zero}
				data[item.ProductID] = a
				order = append(order, item.ProductID)
			}
			a.qty += item.Quantity
			a.revenue = a.revenue.Add(item.Subtotal)
			a.cost = a.cost.Add(p.cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	out := make([]dto.ProductMarginDTO, 0, len(order))
	for _, id := range order {
		a := data[id]
		profit := a.revenue.Sub(a.cost)
		margin := decimal.Zero
		if a.revenue.GreaterThan(decimal.Zero) {
			margin = profit.Div(a.revenue).Mul(hundred).Round(1)
		}
		out = append(out, dto.ProductMarginDTO{
			ProductID: id,
			Name:      a.name,
			QtySold:   a.qty,
			Revenue:   a.revenue,
			Cost:      a.cost,
			Profit:    profit,
			MarginPct: margin,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit.GreaterThan(out[j].Profit)
	})
	return out, nil
}

// TopByProfit devuelve los n productos más rentables.
func (uc *MarginReportUseCase) TopByProfit(n int) ([]dto.ProductMarginDTO, error) {
	margins, err := uc.ProductMargins()
	if err != nil {
		return nil, err
	}
	if len(margins) > n {
		margins = margins[:n]
	}
	return margins, nil
}
