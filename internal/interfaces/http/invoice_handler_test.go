package http_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/hygia/crm-backend/internal/application/dto"
)

func createProduct(t *testing.T, app *fiber.App, body string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/products", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.ID
}

func TestPostInvoices_CreaConTotales(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")
	productA := createProduct(t, app, `{"itemCode":"SKU-A","description":"Guantes","defaultUnitPrice":"15.50"}`)
	productB := createProduct(t, app, `{"itemCode":"SKU-B","defaultUnitPrice":"3.00"}`)

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[`+
			`{"productId":"`+productA+`","quantity":2},`+
			`{"productId":"`+productB+`","quantity":1,"unitPrice":"10.00"}]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INV-001", out.InvoiceNumber)
	assert.Equal(t, "Acme", out.CustomerName)
	assert.Equal(t, "41", out.TotalAmount.String())
	require.Len(t, out.Items, 2)
	assert.Equal(t, "SKU-A", out.Items[0].ItemCode)
}

func TestPostInvoices_ClienteInexistente404(t *testing.T) {
	app, _ := newTestApp(t)
	productA := createProduct(t, app, `{"itemCode":"SKU-A","defaultUnitPrice":"15.50"}`)

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"no-existe","invoiceDate":"2026-01-15","items":[{"productId":"`+productA+`","quantity":1}]}`)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", errResp.Code)
	assert.Equal(t, "Customer with ID no-existe not found", errResp.Message)
}

func TestPostInvoices_ProductoInexistente404(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[{"productId":"no-existe","quantity":1}]}`)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errResp.Code)
	assert.Equal(t, "Product with ID no-existe not found", errResp.Message)
}

func TestPostInvoices_SinPrecio400(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")
	productSinPrecio := createProduct(t, app, `{"itemCode":"SKU-X"}`)

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[{"productId":"`+productSinPrecio+`","quantity":1}]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "UNIT_PRICE_REQUIRED", errResp.Code)
	assert.Equal(t, "Product SKU-X has no default unit price. Please provide unitPrice.", errResp.Message)
}

func TestPostInvoices_NumeroDuplicado409(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")
	productA := createProduct(t, app, `{"itemCode":"SKU-A","defaultUnitPrice":"15.50"}`)

	body := `{"invoiceNumber":"INV-001","customerId":"` + customerID + `","invoiceDate":"2026-01-15","items":[{"productId":"` + productA + `","quantity":1}]}`
	resp := doJSON(t, app, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "INVOICE_ALREADY_EXISTS", errResp.Code)
}

func TestPostInvoices_SinItems400(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestGetInvoiceByID(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")
	productA := createProduct(t, app, `{"itemCode":"SKU-A","defaultUnitPrice":"15.50"}`)

	resp := doJSON(t, app, "POST", "/api/invoices",
		`{"invoiceNumber":"INV-001","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[{"productId":"`+productA+`","quantity":1}]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, app, "GET", "/api/invoices/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, created.ID, out.ID)
	require.Len(t, out.Items, 1)
}

func TestGetInvoiceByID_Inexistente404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/invoices/no-existe", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "INVOICE_NOT_FOUND", errResp.Code)
}

func TestGetInvoicesByCustomer(t *testing.T) {
	app, _ := newTestApp(t)
	customerID := createCustomer(t, app, "Acme")
	productA := createProduct(t, app, `{"itemCode":"SKU-A","defaultUnitPrice":"15.50"}`)

	for _, n := range []string{"INV-001", "INV-002"} {
		resp := doJSON(t, app, "POST", "/api/invoices",
			`{"invoiceNumber":"`+n+`","customerId":"`+customerID+`","invoiceDate":"2026-01-15","items":[{"productId":"`+productA+`","quantity":1}]}`)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/invoices/by-customer/"+customerID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 2)
}

func TestGetInvoicesByCustomer_ClienteInexistente404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/invoices/by-customer/no-existe", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", errResp.Code)
}

func TestPostProducts_CodigoDuplicado409(t *testing.T) {
	app, _ := newTestApp(t)
	createProduct(t, app, `{"itemCode":"SKU-A"}`)

	resp := doJSON(t, app, "POST", "/api/products", `{"itemCode":"SKU-A"}`)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", errResp.Code)
	assert.Equal(t, "Product with item code 'SKU-A' already exists", errResp.Message)
}
