package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// CreateInvoiceUseCase crea una factura con sus líneas calculando los montos
// del lado del servidor. Toda la validación (cliente, productos, precios)
// ocurre antes de escribir nada; la persistencia de cabecera y líneas va en
// una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateInvoice valida todo, calcula montos con aritmética decimal a escala 2
// y persiste factura y líneas atómicamente.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.InvoiceNumber == "" || in.CustomerID == "" || in.InvoiceDate == nil || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// 1) Cliente
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	// 2) Todos los productos, antes de crear nada
	products := make([]*entity.Product, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &domain.ProductNotFoundError{ProductID: item.ProductID}
		}
		products[i] = product
	}

	// 3) Precio unitario por línea: explícito o default del producto.
	//    4) Monto de línea y 5) total, decimal a escala 2.
	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: in.InvoiceNumber,
		CustomerID:    customer.ID,
		CustomerName:  customer.NameStd,
		InvoiceDate:   in.InvoiceDate.Time,
		Note:          in.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	total := decimal.Zero
	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	for i, item := range in.Items {
		product := products[i]
		unitPrice := item.UnitPrice
		if unitPrice == nil {
			unitPrice = product.DefaultUnitPrice
			if unitPrice == nil {
				return nil, &domain.UnitPriceRequiredError{ItemCode: product.ItemCode}
			}
		}
		amount := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   product.ID,
			ItemCode:    product.ItemCode,
			Description: product.Description,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice.Round(2),
			Amount:      amount,
		})
		total = total.Add(amount)
	}
	inv.TotalAmount = total.Round(2)

	// 6) Cabecera y líneas en una transacción: todo o nada.
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, it := range items {
			if err := invoiceRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, items), nil
}

// GetInvoice devuelve la factura con sus líneas.
func (uc *CreateInvoiceUseCase) GetInvoice(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	items, err := uc.invoiceRepo.ItemsByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// ListByCustomer devuelve las facturas del cliente, la más reciente primero.
func (uc *CreateInvoiceUseCase) ListByCustomer(customerID string) ([]*dto.InvoiceResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	invoices, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items, err := uc.invoiceRepo.ItemsByInvoice(inv.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toInvoiceResponse(inv, items))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		InvoiceDate:   dto.DateOnly{Time: inv.InvoiceDate},
		TotalAmount:   inv.TotalAmount,
		Note:          inv.Note,
		Items:         make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ItemCode:    it.ItemCode,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return resp
}
