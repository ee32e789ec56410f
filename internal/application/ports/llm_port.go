package ports

import (
	"context"

	"github.com/jhoicas/productividad-api/internal/application/dto"
)

// Summarizer define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type Summarizer interface {
	// GenerateInsight redacta el informe ejecutivo en Markdown a partir de las métricas.
	GenerateInsight(ctx context.Context, metrics *dto.DashboardDTO) (string, error)
	// ExtractReportFilter interpreta un mensaje libre y devuelve intención, técnico y fechas.
	ExtractReportFilter(ctx context.Context, message string) (*dto.ReportFilter, error)
}
