package qr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/techstyle-pos/pkg/qr"
)

func TestPaymentPayload(t *testing.T) {
	got := qr.PaymentPayload("TechStylePay", "934031164", decimal.NewFromInt(1915))
	assert.Equal(t, "TechStylePay|934031164|1915.00", got)
}

func TestInvoicePayload(t *testing.T) {
	got := qr.InvoicePayload("TechStyle", "TS-482913", decimal.NewFromFloat(2850.5))
	assert.Equal(t, "TechStyle|TS-482913|2850.50", got)
}
