package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/domain"
)

// SyncHandler dispara la sincronización de las hojas operativas.
type SyncHandler struct {
	uc *ingestion.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *ingestion.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// syncStatus código HTTP para el resultado de una corrida. El cuerpo siempre es el SyncResult.
func syncStatus(res *dto.SyncResult) int {
	if res.Status != dto.SyncError {
		return fiber.StatusOK
	}
	switch {
	case errors.Is(res.Err, domain.ErrSourceUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(res.Err, domain.ErrEmptySource), errors.Is(res.Err, domain.ErrMissingKeyColumn):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *SyncHandler) respond(c *fiber.Ctx, res *dto.SyncResult) error {
	return c.Status(syncStatus(res)).JSON(res)
}

// SyncClients godoc
// @Summary      Sincronizar clientes desde la hoja de cálculo
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResult
// @Failure      422  {object}  dto.SyncResult
// @Failure      500  {object}  dto.SyncResult
// @Failure      502  {object}  dto.SyncResult
// @Router       /api/sync/clients [post]
func (h *SyncHandler) SyncClients(c *fiber.Ctx) error {
	return h.respond(c, h.uc.SyncClients(c.UserContext()))
}

// SyncWorkOrders godoc
// @Summary      Sincronizar órdenes de trabajo (ingresos a taller)
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResult
// @Failure      422  {object}  dto.SyncResult
// @Failure      502  {object}  dto.SyncResult
// @Router       /api/sync/work-orders [post]
func (h *SyncHandler) SyncWorkOrders(c *fiber.Ctx) error {
	return h.respond(c, h.uc.SyncWorkOrders(c.UserContext()))
}

// SyncFieldVisits godoc
// @Summary      Sincronizar visitas de campo
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResult
// @Failure      422  {object}  dto.SyncResult
// @Failure      502  {object}  dto.SyncResult
// @Router       /api/sync/field-visits [post]
func (h *SyncHandler) SyncFieldVisits(c *fiber.Ctx) error {
	return h.respond(c, h.uc.SyncFieldVisits(c.UserContext()))
}

// SyncAll godoc
// @Summary      Sincronizar clientes, órdenes y visitas en ese orden
// @Description  Devuelve un resultado por hoja. 207 si alguna corrida terminó con error.
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SyncResult
// @Success      207  {array}  dto.SyncResult
// @Router       /api/sync/all [post]
func (h *SyncHandler) SyncAll(c *fiber.Ctx) error {
	results := h.uc.SyncAll(c.UserContext())
	status := fiber.StatusOK
	for _, r := range results {
		if r.Status == dto.SyncError {
			status = fiber.StatusMultiStatus
			break
		}
	}
	return c.Status(status).JSON(results)
}
