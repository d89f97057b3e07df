// Package analytics contiene las proyecciones read-only sobre ventas,
// productos y categorías: el resumen del panel de control y el reporte de
// márgenes. Nada aquí muta estado; todo se recalcula en cada lectura a partir
// de las colecciones vigentes, filtrando primero las ventas anuladas.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/application/dto"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
)

const dashboardDays = 7 // ventana de la serie diaria del panel

// UncategorizedLabel etiqueta para ventas cuyo producto o categoría ya no resuelve.
const UncategorizedLabel = "Otros"

// DashboardUseCase genera el resumen del panel de control.
type DashboardUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO del momento de la llamada.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	return uc.GetSummaryAt(time.Now())
}

// GetSummaryAt construye el resumen tomando now como referencia de la ventana
// de la serie diaria. Las ventas ANNULLED se excluyen antes de agregar:
// contribuyen cero a todo.
func (uc *DashboardUseCase) GetSummaryAt(now time.Time) (*dto.DashboardSummaryDTO, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("analytics: listar ventas: %w", err)
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("analytics: listar productos: %w", err)
	}

	active := completeOnly(sales)

	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	for _, s := range active {
		totalRevenue = totalRevenue.Add(s.Total)
		totalProfit = totalProfit.Add(s.TotalProfit)
	}

	lowStock := 0
	for _, p := range products {
		if p.LowStock() {
			lowStock++
		}
	}

	byCategory, err := uc.salesByCategory(active, products)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:  totalRevenue,
		TotalProfit:   totalProfit,
		SaleCount:     len(active),
		LowStockCount: lowStock,
		Daily:         dailySeries(active, now, dashboardDays),
		ByCategory:    byCategory,
	}, nil
}

// dailySeries agrupa las ventas por fecha calendario (extraída del timestamp
// de la venta) sobre los últimos days días, del más antiguo al más reciente.
// Los días sin ventas aparecen en cero.
func dailySeries(sales []*entity.Sale, now time.Time, days int) []dto.DailyPointDTO {
	type bucket struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
	}
	buckets := make(map[string]*bucket, days)
	order := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		buckets[day] = &bucket{revenue: decimal.Zero, profit: decimal.Zero}
		order = append(order, day)
	}

	for _, s := range sales {
		day := s.Date.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			continue // fuera de la ventana
		}
		b.revenue = b.revenue.Add(s.Total)
		b.profit = b.profit.Add(s.TotalProfit)
	}

	out := make([]dto.DailyPointDTO, 0, days)
	for _, day := range order {
		out = append(out, dto.DailyPointDTO{
			Date:    day,
			Revenue: buckets[day].revenue,
			Profit:  buckets[day].profit,
		})
	}
	return out
}

// salesByCategory atribuye los subtotales de línea a la categoría del
// producto. Producto eliminado o categoría colgante caen en "Otros".
func (uc *DashboardUseCase) salesByCategory(
	sales []*entity.Sale,
	products []*entity.Product,
) ([]dto.CategorySalesDTO, error) {
	productIx := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productIx[p.ID] = p
	}
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("analytics: listar categorías: %w", err)
	}
	categoryIx := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryIx[c.ID] = c.Name
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	add := func(name string, amount decimal.Decimal) {
		if _, ok := totals[name]; !ok {
			order = append(order, name)
			totals[name] = decimal.Zero
		}
		totals[name] = totals[name].Add(amount)
	}

	for _, s := range sales {
		for _, item := range s.Items {
			name := UncategorizedLabel
			if p, ok := productIx[item.ProductID]; ok {
				if catName, ok := categoryIx[p.CategoryID]; ok {
					name = catName
				}
			}
			add(name, item.Subtotal)
		}
	}

	out := make([]dto.CategorySalesDTO, 0, len(order))
	for _, name := range order {
		out = append(out, dto.CategorySalesDTO{Name: name, Revenue: totals[name]})
	}
	return out, nil
}

// completeOnly filtra las ventas con estado COMPLETE.
func completeOnly(sales []*entity.Sale) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range sales {
		if s.Status == entity.SaleStatusComplete {
			out = append(out, s)
		}
	}
	return out
}
