package repository

import "github.com/hygia/crm-backend/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Cabecera y líneas se crean juntas dentro de una transacción (ver TxRunner en
// application/billing); las líneas nunca se tocan por separado.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	// ListByCustomer devuelve las facturas del cliente, la más reciente primero
	// (invoice_date descendente).
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
	ItemsByInvoice(invoiceID string) ([]*entity.InvoiceItem, error)
}
