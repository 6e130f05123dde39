package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/application/usecase"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP para Customer.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "CUSTOMER_ALREADY_EXISTS",
				Message: fmt.Sprintf("Customer with name '%s' already exists", in.NameStd),
			})
		case errors.Is(err, domain.ErrRegionNotFound):
			// Cuerpo de texto plano, no JSON.
			return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Region with ID %s not found", in.RegionID))
		case errors.Is(err, domain.ErrInvalidTier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_TIER",
				Message: invalidTierMessage(in.Tier),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes con filtros y paginación
// @Tags         customers
// @Produce      json
// @Param        regionId    query  string  false  "Filtrar por región"
// @Param        tier        query  string  false  "Filtrar por tier"
// @Param        q           query  string  false  "Búsqueda por nombre o teléfono"
// @Param        isProspect  query  bool    false  "Filtrar por prospecto"
// @Param        followup    query  string  false  "due: con seguimiento vencido"
// @Param        page        query  int     false  "Página (desde 0)"
// @Param        size        query  int     false  "Tamaño de página"  default(20)
// @Param        sort        query  string  false  "campo[,asc|desc]"
// @Success      200  {object}  dto.CustomerPage
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.CustomerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	var pr dto.PageRequest
	if err := c.QueryParser(&pr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(q, pr)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_TIER",
				Message: invalidTierMessage(q.Tier),
			})
		case errors.Is(err, domain.ErrInvalidSortField):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_SORT_FIELD",
				Message: fmt.Sprintf("Unsupported sort field: %s", sortField(pr.Sort)),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func invalidTierMessage(tier string) string {
	return fmt.Sprintf("Invalid tier value: %s. Allowed values are: %s, %s, %s, %s",
		tier, entity.TierA, entity.TierB, entity.TierC, entity.TierPotential)
}

// sortField extrae el campo del parámetro sort "campo[,dirección]".
func sortField(sort string) string {
	return strings.SplitN(sort, ",", 2)[0]
}
