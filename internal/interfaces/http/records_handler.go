package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/application/usecase"
)

// RecordsHandler consultas de clientes, órdenes, visitas y técnicos.
type RecordsHandler struct {
	uc *usecase.RecordsUseCase
}

// NewRecordsHandler construye el handler.
func NewRecordsHandler(uc *usecase.RecordsUseCase) *RecordsHandler {
	return &RecordsHandler{uc: uc}
}

func badPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "limit debe estar entre 0 y 500 y offset no puede ser negativo",
	})
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 100, max 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ClientResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *RecordsHandler) ListClients(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return badPage(c)
	}
	out, err := h.uc.ListClients(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetClient godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *RecordsHandler) GetClient(c *fiber.Ctx) error {
	out, err := h.uc.GetClient(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListWorkOrders godoc
// @Summary      Listar órdenes de trabajo (más recientes primero)
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 100, max 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.WorkOrderResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/work-orders [get]
func (h *RecordsHandler) ListWorkOrders(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return badPage(c)
	}
	out, err := h.uc.ListWorkOrders(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetWorkOrder godoc
// @Summary      Obtener orden de trabajo por ID
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *RecordsHandler) GetWorkOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetWorkOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListFieldVisits godoc
// @Summary      Listar visitas de campo
// @Tags         field-visits
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 100, max 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.FieldVisitResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/field-visits [get]
func (h *RecordsHandler) ListFieldVisits(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return badPage(c)
	}
	out, err := h.uc.ListFieldVisits(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListTechnicians godoc
// @Summary      Catálogo de técnicos
// @Tags         technicians
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.CatalogItem
// @Router       /api/technicians [get]
func (h *RecordsHandler) ListTechnicians(c *fiber.Ctx) error {
	out, err := h.uc.ListTechnicians(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
