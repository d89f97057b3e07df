// posdemo cablea el módulo de punta a punta y recorre el flujo completo:
// carga (o siembra) el estado desde el colaborador de persistencia, registra
// un ingreso de stock, completa una venta por el canal de tienda virtual y
// escribe el comprobante PDF en disco. No expone flags ni interacción: es el
// anfitrión de demostración del núcleo.
package main

import (
	"context"
	"os"

	"github.com/tu-usuario/techstyle-pos/internal/application/analytics"
	"github.com/tu-usuario/techstyle-pos/internal/application/catalog"
	"github.com/tu-usuario/techstyle-pos/internal/application/inventory"
	"github.com/tu-usuario/techstyle-pos/internal/application/sales"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/kv"
	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/techstyle-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/techstyle-pos/pkg/config"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	kvStore, closeKV, err := newKVStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("colaborador de persistencia")
	}
	defer closeKV()

	store, err := memory.NewStore(ctx, kvStore, cfg.Storage.KeyPrefix, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	catalogUC := catalog.NewUseCase(store.Products(), store.Categories(), log)
	inventoryUC := inventory.NewUseCase(store.Products(), store.Movements(), log)
	salesUC := sales.NewUseCase(store.Sales(), store.Products(), inventoryUC, sales.Config{
		ShippingFee:        cfg.Pricing.ShippingFee,
		FreeShippingMinQty: cfg.Pricing.FreeShippingMinQty,
		SellerStore:        cfg.Shop.SellerStore,
		SellerPOS:          cfg.Shop.SellerPOS,
	}, log)
	dashboardUC := analytics.NewDashboardUseCase(store.Sales(), store.Products(), store.Categories())
	receiptGen := infrapdf.NewReceiptGenerator(infrapdf.ShopInfo{
		Name:     cfg.Shop.Name,
		Tag:      cfg.Shop.Tag,
		PayTag:   cfg.Shop.PayTag,
		Phone:    cfg.Shop.Phone,
		Currency: cfg.Shop.Currency,
	}, cfg.Pricing.TaxRate)

	products, err := catalogUC.SearchProducts("", "")
	if err != nil || len(products) == 0 {
		log.Fatal().Err(err).Msg("catálogo vacío")
	}
	first := products[0]

	// Ingreso manual de stock
	if err := inventoryUC.AdjustStock(inventory.AdjustInput{
		ProductID: first.ID,
		Quantity:  5,
		Type:      entity.MovementTypeIN,
		Note:      "Reposición de demostración",
	}); err != nil {
		log.Fatal().Err(err).Msg("ajustar stock")
	}

	// Venta por el canal de tienda virtual (cliente obligatorio)
	sale, err := salesUC.CompleteSale(sales.CompleteSaleInput{
		Items: []sales.CartItem{{ProductID: first.ID, Quantity: 2}},
		Customer: &entity.CustomerData{
			Type:   entity.DocumentDNI,
			Number: "45671234",
			Name:   "María Quispe",
		},
		PaymentMethod: entity.PaymentYape,
		Channel:       sales.ChannelStorefront,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("completar venta")
	}

	receipt, err := receiptGen.GenerateReceiptPDF(sale)
	if err != nil {
		log.Fatal().Err(err).Msg("generar comprobante")
	}
	out := "comprobante_" + sale.OrderNumber + ".pdf"
	if err := os.WriteFile(out, receipt, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir comprobante")
	}

	summary, err := dashboardUC.GetSummary()
	if err != nil {
		log.Fatal().Err(err).Msg("resumen del panel")
	}

	log.Info().
		Str("order_number", sale.OrderNumber).
		Str("total", sale.Total.StringFixed(2)).
		Str("receipt", out).
		Str("revenue", summary.TotalRevenue.StringFixed(2)).
		Int("low_stock", summary.LowStockCount).
		Msg("flujo de demostración completado")
}

// newKVStore selecciona el colaborador de persistencia según configuración.
func newKVStore(ctx context.Context, cfg config.StorageConfig) (kv.Store, func(), error) {
	switch cfg.Driver {
	case "redis":
		r, err := kv.NewRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case "memory":
		return kv.NewMemory(), func() {}, nil
	default:
		f, err := kv.NewFile(cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	}
}
