package dto

import "time"

// IntentTechnicianReport intención de búsqueda de trabajos de un técnico.
const IntentTechnicianReport = "reporte_tecnico"

// Tipos de respuesta del chat.
const (
	ChatReplyText   = "text"
	ChatReplyReport = "report"
)

// ChatMessageRequest mensaje libre del usuario.
type ChatMessageRequest struct {
	Text string `json:"text" validate:"required,min=2,max=1000"`
}

// ReportFilter filtros extraídos por el modelo a partir del mensaje.
type ReportFilter struct {
	Intent     string     `json:"intencion"`
	Technician string     `json:"tecnico"`
	StartDate  *time.Time `json:"-"`
	EndDate    *time.Time `json:"-"`
}

// ReportRowDTO fila del reporte de trabajos.
type ReportRowDTO struct {
	Order      string `json:"order"`
	Date       string `json:"date"`
	Client     string `json:"client"`
	Service    string `json:"service"`
	Technician string `json:"technician"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// ChatReplyDTO respuesta del chat: texto o reporte con filas.
type ChatReplyDTO struct {
	Type    string         `json:"type"`
	Content string         `json:"content"`
	Rows    []ReportRowDTO `json:"rows,omitempty"`
}
