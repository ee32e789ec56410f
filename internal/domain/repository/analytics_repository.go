package repository

import (
	"context"
	"time"
)

// NamedCount par nombre/conteo producido por las consultas de agregación.
type NamedCount struct {
	Name  string
	Count int
}

// SerialOccurrence una orden del período con la serie de su equipo (para reincidencias).
type SerialOccurrence struct {
	OrderID string
	Serial  string
}

// AnalyticsRepository consultas de solo lectura sobre órdenes de trabajo en un período
// [start, end] sobre la fecha de ingreso.
type AnalyticsRepository interface {
	// TechnicianTotals órdenes por técnico, de mayor a menor.
	TechnicianTotals(ctx context.Context, start, end time.Time) ([]NamedCount, error)
	// MonthlyTrends órdenes por mes ("YYYY-MM"), ascendente.
	MonthlyTrends(ctx context.Context, start, end time.Time) ([]NamedCount, error)
	// ServiceDistribution órdenes por tipo de servicio.
	ServiceDistribution(ctx context.Context, start, end time.Time) ([]NamedCount, error)
	// TopCities órdenes por ciudad del cliente (nombre vacío si el cliente no tiene ciudad).
	TopCities(ctx context.Context, start, end time.Time, limit int) ([]NamedCount, error)
	// OrderSerials órdenes con equipo asociado y la serie de ese equipo (vacía si no tiene).
	OrderSerials(ctx context.Context, start, end time.Time) ([]SerialOccurrence, error)
}
