package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible.
// DefaultUnitPrice es opcional: nil significa que toda línea de factura que lo
// referencie debe traer precio explícito.
type Product struct {
	ID               string
	ItemCode         string // código único
	Description      string
	DefaultUnitPrice *decimal.Decimal
	CompanyTag       string
	ProductType      string
	Barcode          string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
