package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/application/usecase"
)

// RegionHandler maneja las peticiones HTTP para Region.
type RegionHandler struct {
	uc *usecase.RegionUseCase
}

// NewRegionHandler construye el handler.
func NewRegionHandler(uc *usecase.RegionUseCase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

// List godoc
// @Summary      Listar regiones ordenadas por nombre
// @Tags         regions
// @Produce      json
// @Success      200  {array}  dto.RegionResponse
// @Router       /api/regions [get]
func (h *RegionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
