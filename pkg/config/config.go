package config

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// variables de entorno y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	Shop    ShopConfig
	Pricing PricingConfig
	Storage StorageConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// ShopConfig identidad de la tienda: encabezados de comprobante, payloads QR
// y nombres de vendedor por canal.
type ShopConfig struct {
	Name        string // razón comercial, ej. "TechStyleStore"
	Tag         string // etiqueta del QR de verificación de comprobante
	PayTag      string // etiqueta del QR de cobro por billetera
	Phone       string // número de billetera móvil (Yape/Plin)
	Currency    string // símbolo, ej. "S/"
	SellerStore string // nombre de vendedor del canal tienda virtual
	SellerPOS   string // nombre de vendedor del punto de venta interno
}

// PricingConfig parámetros del motor de precios.
type PricingConfig struct {
	ShippingFee        decimal.Decimal // tarifa plana de envío (tienda virtual)
	FreeShippingMinQty int             // unidades desde las que el envío es gratis
	TaxRate            decimal.Decimal // IGV, ej. 0.18
}

// StorageConfig selección del colaborador de persistencia (snapshots clave-valor).
type StorageConfig struct {
	Driver    string // memory, file, redis
	FilePath  string // directorio de snapshots JSON (driver file)
	RedisAddr string
	RedisDB   int
	KeyPrefix string // prefijo de las cuatro claves lógicas, ej. "tf_"
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// un archivo .env. Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// SHOP_NAME, PRICING_SHIPPING_FEE, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "techstyle-pos"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		Shop: ShopConfig{
			Name:        getString(v, "SHOP_NAME", "TechStyleStore"),
			Tag:         getString(v, "SHOP_TAG", "TechStyle"),
			PayTag:      getString(v, "SHOP_PAY_TAG", "TechStylePay"),
			Phone:       getString(v, "SHOP_PHONE", "934031164"),
			Currency:    getString(v, "SHOP_CURRENCY", "S/"),
			SellerStore: getString(v, "SHOP_SELLER_STORE", "TechStyleStore Virtual"),
			SellerPOS:   getString(v, "SHOP_SELLER_POS", "Admin TecnoPeru"),
		},
		Pricing: PricingConfig{
			ShippingFee:        getDecimal(v, "PRICING_SHIPPING_FEE", "15"),
			FreeShippingMinQty: getInt(v, "PRICING_FREE_SHIPPING_MIN_QTY", 3),
			TaxRate:            getDecimal(v, "PRICING_TAX_RATE", "0.18"),
		},
		Storage: StorageConfig{
			Driver:    getString(v, "STORAGE_DRIVER", "file"),
			FilePath:  getString(v, "STORAGE_FILE_PATH", "./data"),
			RedisAddr: getString(v, "STORAGE_REDIS_ADDR", "localhost:6379"),
			RedisDB:   getInt(v, "STORAGE_REDIS_DB", 0),
			KeyPrefix: getString(v, "STORAGE_KEY_PREFIX", "tf_"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt lee un entero; ante un valor malformado cae al default.
func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDecimal lee un monto como decimal; ante un valor malformado cae al default.
func getDecimal(v *viper.Viper, key, def string) decimal.Decimal {
	raw := def
	if v.IsSet(key) {
		raw = v.GetString(key)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		d, _ = decimal.NewFromString(def)
	}
	return d
}
