package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// IsProspect se acepta por compatibilidad pero se ignora siempre: el valor se
// deriva del tier en el servidor.
type CreateCustomerRequest struct {
	NameStd      string `json:"nameStd" validate:"required"`
	IsProspect   *bool  `json:"isProspect"`
	RegionID     string `json:"regionId" validate:"required"`
	Tier         string `json:"tier"`
	AddressText  string `json:"addressText"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PaymentTerms string `json:"paymentTerms"`
	Notes        string `json:"notes"`
}

// CustomerRegionRef región embebida en la respuesta de cliente.
type CustomerRegionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           string             `json:"id"`
	NameStd      string             `json:"nameStd"`
	IsProspect   bool               `json:"isProspect"`
	Region       *CustomerRegionRef `json:"region"`
	AddressText  string             `json:"addressText,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty"`
	PaymentTerms string             `json:"paymentTerms,omitempty"`
	Tier         string             `json:"tier"`
}

// CustomerPage envelope de página para GET /api/customers.
type CustomerPage struct {
	Content []CustomerResponse `json:"content"`
	PageMeta
}

// CustomerListQuery filtros opcionales del listado de clientes.
type CustomerListQuery struct {
	RegionID   string `query:"regionId"`
	Tier       string `query:"tier"`
	Q          string `query:"q"`
	IsProspect *bool  `query:"isProspect"`
	Followup   string `query:"followup"`
}

// RegionResponse región para GET /api/regions.
type RegionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// CreateProductRequest body para POST /api/products. Active por defecto true.
type CreateProductRequest struct {
	ItemCode         string           `json:"itemCode" validate:"required"`
	Description      string           `json:"description"`
	DefaultUnitPrice *decimal.Decimal `json:"defaultUnitPrice"`
	CompanyTag       string           `json:"companyTag"`
	ProductType      string           `json:"productType"`
	Barcode          string           `json:"barcode"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID               string           `json:"id"`
	ItemCode         string           `json:"itemCode"`
	Description      string           `json:"description,omitempty"`
	DefaultUnitPrice *decimal.Decimal `json:"defaultUnitPrice"`
	CompanyTag       string           `json:"companyTag,omitempty"`
	ProductType      string           `json:"productType,omitempty"`
	Barcode          string           `json:"barcode,omitempty"`
	Active           bool             `json:"active"`
}

// CreateVisitRequest body para POST /api/customers/:customerId/visits.
type CreateVisitRequest struct {
	VisitAt        *DateTime `json:"visitAt" validate:"required"`
	Type           string    `json:"type"`
	Result         string    `json:"result"`
	Notes          string    `json:"notes"`
	NextFollowUpAt *DateTime `json:"nextFollowUpAt"`
}

// VisitResponse visita en respuestas.
type VisitResponse struct {
	ID             string    `json:"id"`
	VisitAt        DateTime  `json:"visitAt"`
	Type           string    `json:"type,omitempty"`
	Result         string    `json:"result,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	NextFollowUpAt *DateTime `json:"nextFollowUpAt"`
}

// VisitPage envelope de página para GET /api/customers/:customerId/visits.
type VisitPage struct {
	Content []VisitResponse `json:"content"`
	PageMeta
}
