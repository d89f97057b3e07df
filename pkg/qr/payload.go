// Package qr construye los payloads de los códigos QR del comprobante.
// Son códigos de verificación solo para visualización (campos concatenados
// con "|"), no firmas criptográficas.
package qr

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentPayload payload del QR de cobro por billetera móvil:
// "<payTag>|<teléfono>|<total>". El cliente lo escanea para pagar.
func PaymentPayload(payTag, phone string, total decimal.Decimal) string {
	return fmt.Sprintf("%s|%s|%s", payTag, phone, total.StringFixed(2))
}

// InvoicePayload payload del QR de verificación del comprobante:
// "<shopTag>|<n° de pedido>|<total>".
func InvoicePayload(shopTag, orderNumber string, total decimal.Decimal) string {
	return fmt.Sprintf("%s|%s|%s", shopTag, orderNumber, total.StringFixed(2))
}
