package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de factura. Las líneas solo se crean como
// parte de la creación de la factura; nunca se actualizan ni borran sueltas.
// Amount es derivado: UnitPrice × Quantity, escala 2.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ItemCode    string // denormalizado del producto, para las respuestas
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}
