package billing

import (
	"context"

	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción: cabecera y líneas de
// la factura se vuelven visibles como unidad o no se vuelven visibles en
// absoluto. El repositorio que recibe fn está atado a la transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renderiza la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem, customer *entity.Customer) ([]byte, error)
}
