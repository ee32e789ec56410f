package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/productividad-api/internal/application/dto"
)

const insightSystemPrompt = `Actúa como un Gerente de Operaciones Senior de una empresa de mantenimiento técnico de balanzas.

Reglas estrictas:
1. Analiza ÚNICAMENTE los datos del JSON adjunto. No asumas datos externos ni inventes contexto.
2. El análisis corresponde exclusivamente al periodo indicado en "periodo".
3. No menciones la fecha actual ni escribas "Generado el...".
4. Prioriza Mantenimiento Preventivo frente a Correctivo y la productividad técnica.

Responde en Markdown limpio con esta estructura exacta:

# Informe de Gestión: <periodo>

### 1. Diagnóstico Ejecutivo
* Resumen de Actividad: volumen total de trabajos y si representa carga alta o baja.
* Salud Operativa: proporción Preventivo vs. Correctivo/Reparación según "services".

### 2. Desempeño del Equipo Técnico
* Liderazgo: técnico con mayor volumen según "technicians".
* Distribución: ¿la carga está equilibrada? Menciona técnicos muy por debajo del líder.
* Recomendación directa para nivelar la carga o premiar la eficiencia.

### 3. Inteligencia de Negocio
* Foco Geográfico: ciudad con más demanda según "locations" y una acción logística.
* Tendencias: estabilidad o picos según "trends".
* Calidad: interpreta "quality_kpi" (reincidencias de equipos).

### 4. Conclusión Estratégica
* Una frase final con el estado del periodo y la acción prioritaria.

Tono profesional, analítico y directo.`

const filterSystemPrompt = `Eres un asistente que convierte pedidos de reportes en filtros para una base de datos de mantenimiento.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown) con esta estructura exacta:
{
  "intencion": "reporte_tecnico" o "otro",
  "tecnico": "<nombre de la persona> o null",
  "fecha_inicio": "YYYY-MM-DD o null",
  "fecha_fin": "YYYY-MM-DD o null"
}

Reglas:
- Si piden trabajos, mantenimientos o reportes de un técnico, la intención es "reporte_tecnico".
- "Noviembre 2024" -> fecha_inicio 2024-11-01, fecha_fin 2024-11-30.
- Fechas relativas ("ayer", "la semana pasada") se calculan a partir de la fecha de hoy indicada.
- Si un dato no aparece en el mensaje usa null.`

func insightUserPrompt(metrics *dto.DashboardDTO) (string, error) {
	data, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("AI: serializar métricas: %w", err)
	}
	return fmt.Sprintf("Periodo: %s\nTotal de trabajos: %d\n\nDATOS OPERATIVOS DEL PERIODO:\n%s",
		metrics.Period, metrics.TotalJobs(), data), nil
}

func filterUserPrompt(message string, today time.Time) string {
	return fmt.Sprintf("Fecha de hoy: %s\nMensaje: %q", today.Format("2006-01-02"), message)
}

// filterPayload JSON que esperamos recibir del modelo.
type filterPayload struct {
	Intent     string  `json:"intencion"`
	Technician *string `json:"tecnico"`
	StartDate  *string `json:"fecha_inicio"`
	EndDate    *string `json:"fecha_fin"`
}

// parseReportFilter convierte la respuesta del modelo en filtros. Fechas ilegibles y
// el texto "null" se tratan como ausentes.
func parseReportFilter(raw string) (*dto.ReportFilter, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo (respuesta: %s)", raw)
	}
	var p filterPayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("AI: parsear filtros: %w (JSON extraído: %s)", err, clean)
	}
	return &dto.ReportFilter{
		Intent:     strings.TrimSpace(p.Intent),
		Technician: nullableText(p.Technician),
		StartDate:  parseISODate(p.StartDate),
		EndDate:    parseISODate(p.EndDate),
	}, nil
}

func nullableText(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

func parseISODate(s *string) *time.Time {
	v := nullableText(s)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
// Captura desde el primer '{' hasta el último '}' coincidente.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON de un texto libre:
// primero quita bloques de código markdown, luego busca { … } con regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
