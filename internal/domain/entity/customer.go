package entity

// DocumentType tipo de documento de identidad del cliente (Perú).
type DocumentType string

const (
	DocumentDNI DocumentType = "DNI" // documento nacional de identidad
	DocumentRUC DocumentType = "RUC" // registro único de contribuyentes
)

// CustomerData datos del cliente capturados al momento de la venta.
// Opcional en el punto de venta interno; obligatorio (nombre y número)
// en el checkout de la tienda virtual.
type CustomerData struct {
	Type    DocumentType `json:"type"`
	Number  string       `json:"number"`
	Name    string       `json:"name"`
	Address string       `json:"address,omitempty"`
}

// Complete reporta si los campos obligatorios del checkout están presentes.
func (c CustomerData) Complete() bool {
	return c.Name != "" && c.Number != ""
}
