package dto

import "github.com/shopspring/decimal"

// DashboardRequest período del tablero. Fechas YYYY-MM-DD; vacías -> últimos 180 días.
type DashboardRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// TechnicianTotalDTO órdenes atendidas por técnico.
type TechnicianTotalDTO struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// TrendPointDTO órdenes ingresadas en un mes (YYYY-MM).
type TrendPointDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ServiceShareDTO órdenes por tipo de servicio.
type ServiceShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CityCountDTO órdenes por ciudad del cliente.
type CityCountDTO struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// QualityKPIDTO reincidencias de equipos en el período.
type QualityKPIDTO struct {
	TotalJobs   int             `json:"total_trabajos"`
	Recurrences int             `json:"reincidencias_detectadas"`
	QualityRate decimal.Decimal `json:"tasa_calidad"`
}

// DashboardDTO métricas del período para el tablero y para el resumen ejecutivo.
type DashboardDTO struct {
	Period      string               `json:"periodo"`
	Technicians []TechnicianTotalDTO `json:"technicians"`
	Trends      []TrendPointDTO      `json:"trends"`
	Services    []ServiceShareDTO    `json:"services"`
	Locations   []CityCountDTO       `json:"locations"`
	QualityKPI  QualityKPIDTO        `json:"quality_kpi"`
}

// TotalJobs órdenes del período (suma de tendencias mensuales).
func (d *DashboardDTO) TotalJobs() int {
	total := 0
	for _, t := range d.Trends {
		total += t.Count
	}
	return total
}

// InsightDTO resumen ejecutivo en Markdown.
type InsightDTO struct {
	Content string `json:"content"`
}
