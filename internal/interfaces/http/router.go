package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hygia/crm-backend/internal/application/billing"
	"github.com/hygia/crm-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	RegionUC      *usecase.RegionUseCase
	ProductUC     *usecase.ProductUseCase
	VisitUC       *usecase.VisitUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Regions
	regions := api.Group("/regions")
	regionHandler := NewRegionHandler(deps.RegionUC)
	regions.Get("/", regionHandler.List)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Visits (anidadas bajo el cliente)
	visitHandler := NewVisitHandler(deps.VisitUC)
	customers.Post("/:customerId/visits", visitHandler.Create)
	customers.Get("/:customerId/visits", visitHandler.List)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/by-customer/:customerId", invoiceHandler.ListByCustomer)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id", invoiceHandler.GetByID)
}
