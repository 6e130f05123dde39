package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/application/usecase"
	"github.com/hygia/crm-backend/internal/domain"
)

// VisitHandler maneja las peticiones HTTP para la bitácora de visitas.
type VisitHandler struct {
	uc *usecase.VisitUseCase
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *usecase.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar visita a un cliente
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        customerId  path  string                 true  "ID del cliente"
// @Param        body        body  dto.CreateVisitRequest true  "Datos de la visita"
// @Success      201  {object}  dto.VisitResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string
// @Router       /api/customers/{customerId}/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(customerID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFollowUpBeforeVisit):
			// Cuerpo de texto plano, no JSON.
			return c.Status(fiber.StatusBadRequest).SendString("nextFollowUpAt must be greater than or equal to visitAt")
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf("Customer with ID %s not found", customerID))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "visitAt is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar visitas de un cliente paginadas
// @Tags         visits
// @Produce      json
// @Param        customerId  path   string  true   "ID del cliente"
// @Param        page        query  int     false  "Página (desde 0)"
// @Param        size        query  int     false  "Tamaño de página"  default(20)
// @Param        sort        query  string  false  "campo[,asc|desc]"
// @Success      200  {object}  dto.VisitPage
// @Failure      404  {string}  string
// @Router       /api/customers/{customerId}/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	var pr dto.PageRequest
	if err := c.QueryParser(&pr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(customerID, pr)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf("Customer with ID %s not found", customerID))
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
