package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/application/ports"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
	"github.com/jhoicas/productividad-api/pkg/logger"
)

// Mensajes fijos cuando el modelo no responde o no entiende el pedido.
const (
	MsgInsightUnavailable = "No se pudo generar el análisis en este momento. Intenta de nuevo más tarde."
	MsgAIUnavailable      = "Lo siento, tuve un error conectando con el asistente de IA. Intenta de nuevo."
	MsgUnsupportedIntent  = "Entendí tu mensaje, pero por ahora solo sé generar reportes de técnicos. ¡Prueba pidiéndome uno!"
	MsgMissingFilters     = "Necesito saber el nombre del técnico y el rango de fechas."
)

// Valores mostrados cuando la orden no tiene el dato.
const (
	defaultClientName = "Cliente General"
	defaultService    = "General"
	defaultTechnician = "Sin Asignar"
)

const (
	insightTimeout = 60 * time.Second
	extractTimeout = 15 * time.Second
)

// AIUseCase orquesta el resumen ejecutivo del tablero y el chat de reportes.
// Cada llamada al modelo lleva su propio timeout para que las latencias externas
// no bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm        ports.Summarizer
	analytics  *AnalyticsUseCase
	workOrders repository.WorkOrderRepository
	log        *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto Summarizer.
func NewAIUseCase(llm ports.Summarizer, analytics *AnalyticsUseCase, workOrders repository.WorkOrderRepository, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, analytics: analytics, workOrders: workOrders, log: log.Named("ai")}
}

// Insight calcula las métricas del período y pide el informe al modelo.
// Un fallo del modelo no es error: se devuelve el mensaje fijo en Content.
func (uc *AIUseCase) Insight(ctx context.Context, req dto.DashboardRequest) (*dto.InsightDTO, error) {
	metrics, err := uc.analytics.GetDashboard(ctx, req)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	content, err := uc.llm.GenerateInsight(llmCtx, metrics)
	if err != nil || strings.TrimSpace(content) == "" {
		uc.log.Warn().Err(err).Str("period", metrics.Period).Msg("resumen ejecutivo no disponible")
		return &dto.InsightDTO{Content: MsgInsightUnavailable}, nil
	}
	return &dto.InsightDTO{Content: content}, nil
}

// Chat interpreta el mensaje y, si pide un reporte de técnico, busca sus órdenes.
// Solo los errores de base de datos se devuelven como error.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatReplyDTO, error) {
	llmCtx, cancel := context.WithTimeout(ctx, extractTimeout)
	filter, err := uc.llm.ExtractReportFilter(llmCtx, req.Text)
	cancel()
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo interpretar el mensaje")
		return textReply(MsgAIUnavailable), nil
	}
	if filter.Intent != dto.IntentTechnicianReport {
		return textReply(MsgUnsupportedIntent), nil
	}
	parts := nameParts(filter.Technician)
	if len(parts) == 0 || filter.StartDate == nil {
		return textReply(MsgMissingFilters), nil
	}

	from := *filter.StartDate
	to := from.AddDate(0, 1, -1)
	if filter.EndDate != nil {
		to = *filter.EndDate
	}
	if from.After(to) {
		from, to = to, from
	}

	orders, err := uc.workOrders.SearchByTechnician(ctx, repository.TechnicianReportFilter{
		NameParts: parts,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: buscar órdenes: %w", err)
	}
	if len(orders) == 0 {
		return textReply(fmt.Sprintf("No encontré mantenimientos de **%s** entre %s y %s.",
			filter.Technician, from.Format(dateLayout), to.Format(dateLayout))), nil
	}

	rows := make([]dto.ReportRowDTO, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, reportRow(o))
	}
	return &dto.ChatReplyDTO{
		Type: dto.ChatReplyReport,
		Content: fmt.Sprintf("He generado el reporte de %s: %d trabajos entre %s y %s.",
			filter.Technician, len(rows), from.Format(dateLayout), to.Format(dateLayout)),
		Rows: rows,
	}, nil
}

func textReply(content string) *dto.ChatReplyDTO {
	return &dto.ChatReplyDTO{Type: dto.ChatReplyText, Content: content}
}

// nameParts partes del nombre útiles para buscar (más de 2 caracteres: descarta "de", "la").
func nameParts(name string) []string {
	var parts []string
	for _, p := range strings.Fields(name) {
		if len([]rune(p)) > 2 {
			parts = append(parts, p)
		}
	}
	return parts
}

func reportRow(o *entity.WorkOrder) dto.ReportRowDTO {
	date := "-"
	if o.IntakeDate != nil {
		date = o.IntakeDate.Format(dateLayout)
	}
	return dto.ReportRowDTO{
		Order:      o.OrderNumber(),
		Date:       date,
		Client:     valueOr(o.ClientName, defaultClientName),
		Service:    valueOr(o.ServiceName, defaultService),
		Technician: valueOr(o.TechnicianName, defaultTechnician),
		Status:     valueOr(o.Status, entity.OrderStatusPending),
		Notes:      valueOr(o.Notes, ""),
	}
}

func valueOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
