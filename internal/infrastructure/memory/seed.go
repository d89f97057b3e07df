package memory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
)

// Datos semilla del catálogo: se cargan cuando el almacén clave-valor aún no
// tiene las claves de productos/categorías (primer arranque).

func seedCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "1", Name: "Smartphones"},
		{ID: "2", Name: "Laptops"},
		{ID: "3", Name: "Accesorios"},
		{ID: "4", Name: "Smartwatches"},
	}
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:            "p1",
			Name:          "iPhone 15 Pro Max",
			SKU:           "IPH-15-PM",
			Description:   "El iPhone más potente hasta la fecha. Con chip A17 Pro, sistema de cámaras Pro con teleobjetivo de 5x y acabado en titanio de grado aeroespacial.",
			CategoryID:    "1",
			PurchasePrice: decimal.NewFromInt(4200),
			SalePrice:     decimal.NewFromInt(5500),
			Stock:         10,
			MinStock:      2,
			ImageURL:      "https://images.unsplash.com/photo-1696446701796-da61225697cc?auto=format&fit=crop&q=80&w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1696446701796-da61225697cc?auto=format&fit=crop&q=80&w=400",
				"https://images.unsplash.com/photo-1695048133142-1a20484d2569?auto=format&fit=crop&q=80&w=400",
			},
		},
		{
			ID:            "p2",
			Name:          "MacBook Air M2",
			SKU:           "MAC-AIR-M2",
			Description:   "Increíblemente delgada y rápida. La MacBook Air con chip M2 es una supercomputadora portátil para trabajar, jugar y crear. Hasta 18 horas de batería.",
			CategoryID:    "2",
			PurchasePrice: decimal.NewFromInt(3800),
			SalePrice:     decimal.NewFromInt(4800),
			Stock:         5,
			MinStock:      1,
			ImageURL:      "https://images.unsplash.com/photo-1611186871348-b1ec696e5237?auto=format&fit=crop&q=80&w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1611186871348-b1ec696e5237?auto=format&fit=crop&q=80&w=400",
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&q=80&w=400",
			},
		},
		{
			ID:            "p3",
			Name:          "AirPods Pro 2",
			SKU:           "AIRP-PRO2",
			Description:   "Cancelación Activa de Ruido hasta dos veces superior. Audio Adaptativo y Audio Espacial personalizado. Estuche de carga MagSafe con USB-C.",
			CategoryID:    "3",
			PurchasePrice: decimal.NewFromInt(650),
			SalePrice:     decimal.NewFromInt(950),
			Stock:         25,
			MinStock:      5,
			ImageURL:      "https://images.unsplash.com/photo-1588423770574-f199ba44d7f1?auto=format&fit=crop&q=80&w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1588423770574-f199ba44d7f1?auto=format&fit=crop&q=80&w=400",
				"https://images.unsplash.com/photo-1603351154351-5e2d0600bb77?auto=format&fit=crop&q=80&w=400",
			},
		},
	}
}
