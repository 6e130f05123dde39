package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" validate:"required"`
	CustomerID    string               `json:"customerId" validate:"required"`
	InvoiceDate   *DateOnly            `json:"invoiceDate" validate:"required"`
	Note          string               `json:"note"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemRequest línea de factura. UnitPrice nil = usar el precio por
// defecto del producto; la cantidad no puede ser negativa.
type InvoiceItemRequest struct {
	ProductID string           `json:"productId" validate:"required"`
	Quantity  int              `json:"quantity" validate:"min=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// InvoiceResponse factura con sus líneas y totales calculados.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoiceNumber"`
	CustomerID    string                `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	InvoiceDate   DateOnly              `json:"invoiceDate"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	Note          string                `json:"note,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ItemCode    string          `json:"itemCode"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}
