package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del negocio para el panel de control.
// Solo ventas COMPLETE contribuyen a los montos; las anuladas quedan fuera
// de todo agregado.
type DashboardSummaryDTO struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"` // suma de totales de venta
	TotalProfit   decimal.Decimal `json:"totalProfit"`  // suma de utilidades almacenadas
	SaleCount     int             `json:"saleCount"`
	LowStockCount int             `json:"lowStockCount"` // productos con stock ≤ mínimo

	// Serie de los últimos 7 días calendario, del más antiguo al más reciente.
	Daily []DailyPointDTO `json:"daily"`

	// Ventas por categoría (subtotales de línea); categoría colgante → "Otros".
	ByCategory []CategorySalesDTO `json:"byCategory"`
}

// DailyPointDTO punto de la serie diaria.
type DailyPointDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// CategorySalesDTO ingresos atribuidos a una categoría.
type CategorySalesDTO struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}
