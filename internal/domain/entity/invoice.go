package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
// TotalAmount es derivado (suma de los montos de línea, escala 2) y se calcula
// siempre del lado del servidor. Única por (InvoiceNumber, CustomerID).
type Invoice struct {
	ID            string
	InvoiceNumber string
	CustomerID    string
	CustomerName  string // poblado por el repositorio en lecturas
	InvoiceDate   time.Time // solo fecha, sin hora
	TotalAmount   decimal.Decimal
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
