package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/application/usecase"
)

// AIHandler resumen ejecutivo y chat de reportes asistidos por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GetInsight godoc
// @Summary      Resumen ejecutivo del período generado por IA
// @Description  Usa las mismas métricas del tablero. Si el modelo falla, content trae un mensaje fijo.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  dto.InsightDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/insight [get]
func (h *AIHandler) GetInsight(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	out, err := h.uc.Insight(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Chat godoc
// @Summary      Búsqueda de reportes por técnico en lenguaje natural
// @Description  Ejemplo: "mantenimientos de Juan Pérez en noviembre 2024". Devuelve type=report con filas o type=text con la aclaración que falta.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatMessageRequest  true  "text"
// @Success      200   {object}  dto.ChatReplyDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/chat/message [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	out, err := h.uc.Chat(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
