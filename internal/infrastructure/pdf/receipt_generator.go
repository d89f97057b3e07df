// Package pdf implementa la representación imprimible del comprobante de
// venta usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Pedido + Fecha + Vendedor            │
//	│  ───────────────────────────────────────────────────────── │
//	│  CLIENTE: Nombre + DNI/RUC + dirección                      │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALES: Op. Gravada / IGV (18%) / TOTAL                   │
//	│  ───────────────────────────────────────────────────────── │
//	│  QR de cobro (billetera) + QR de verificación               │
//	└─────────────────────────────────────────────────────────────┘
//
// Es un documento legible para humanos, no un formato de intercambio; el QR
// es un código de verificación de solo visualización.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/pricing"
	"github.com/tu-usuario/techstyle-pos/pkg/qr"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ShopInfo identidad de la tienda para el encabezado y los QR.
type ShopInfo struct {
	Name     string
	Tag      string // etiqueta del QR de verificación
	PayTag   string // etiqueta del QR de cobro
	Phone    string // número de billetera móvil
	Currency string // símbolo, ej. "S/"
}

// ReceiptGenerator genera el comprobante PDF de una venta finalizada.
type ReceiptGenerator struct {
	shop    ShopInfo
	taxRate decimal.Decimal
	printer *message.Printer
}

// NewReceiptGenerator construye el generador. Los montos se formatean con la
// convención numérica es-PE.
func NewReceiptGenerator(shop ShopInfo, taxRate decimal.Decimal) *ReceiptGenerator {
	return &ReceiptGenerator{
		shop:    shop,
		taxRate: taxRate,
		printer: message.NewPrinter(language.MustParse("es-PE")),
	}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta "+sale.OrderNumber, true).
		WithAuthor(g.shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if sale.Customer != nil {
		m.AddRows(customerRow(sale.Customer))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableDetailRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.qrFooterRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y número de pedido + fecha + vendedor (der).
func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de Venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(sale.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Vendedor: "+sale.SellerName, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente (DNI o RUC).
func customerRow(customer *entity.CustomerData) core.Row {
	doc := fmt.Sprintf("%s: %s", customer.Type, customer.Number)
	address := customer.Address
	if address == "" {
		address = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   Dirección: %s", doc, address),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta (instantáneas de la venta).
func (g *ReceiptGenerator) tableDetailRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				g.money(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				g.money(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: operación gravada + IGV + total. La descomposición del impuesto
// es solo para visualización (base = total/(1+r)); no se almacena en la venta.
func (g *ReceiptGenerator) totalsRow(sale *entity.Sale) core.Row {
	tax := pricing.Tax(sale.Total, g.taxRate)
	ratePct := g.taxRate.Mul(decimal.NewFromInt(100)).StringFixed(0)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Op. Gravada:"),
			label("IGV ("+ratePct+"%):"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(g.money(tax.Base)),
			value(g.money(tax.Tax)),
			grandValue(g.money(sale.Total)),
		),
		col.New(1),
	)
}

// qrFooterRows: QR de cobro por billetera (solo pagos Yape/Plin) y QR de
// verificación del comprobante.
func (g *ReceiptGenerator) qrFooterRows(sale *entity.Sale) []core.Row {
	verification := qr.InvoicePayload(g.shop.Tag, sale.OrderNumber, sale.Total)

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if sale.PaymentMethod == entity.PaymentYape || sale.PaymentMethod == entity.PaymentPlin {
		payment := qr.PaymentPayload(g.shop.PayTag, g.shop.Phone, sale.Total)
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(payment, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(4).Add(code.NewQr(verification, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(4).Add(
				text.New("Escanea el primer QR para pagar con\n"+string(sale.PaymentMethod)+".", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("El segundo QR verifica este\ncomprobante.", props.Text{
					Size: 8, Top: 18, Left: 3, Color: colorGray,
				}),
			),
		))
	} else {
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(verification, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para verificar\neste comprobante.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("¡Gracias por tu compra!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	)))
	return rows
}

// money formatea un monto con el símbolo de la tienda y convención es-PE.
func (g *ReceiptGenerator) money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return g.printer.Sprintf("%s %v", g.shop.Currency,
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
