package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero de productividad.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) namedCounts(ctx context.Context, op, query string, args ...any) ([]repository.NamedCount, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.%s: %w", op, err)
	}
	defer rows.Close()

	results := []repository.NamedCount{}
	for rows.Next() {
		var row repository.NamedCount
		if err := rows.Scan(&row.Name, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TechnicianTotals órdenes por técnico asignado, de mayor a menor.
func (r *AnalyticsRepo) TechnicianTotals(ctx context.Context, start, end time.Time) ([]repository.NamedCount, error) {
	const query = `
	SELECT t.name, COUNT(w.id)::int AS total
	FROM work_orders w
	JOIN technicians t ON t.id = w.technician_id
	WHERE w.intake_date BETWEEN $1 AND $2
	GROUP BY t.name
	ORDER BY total DESC, t.name`
	return r.namedCounts(ctx, "TechnicianTotals", query, start, end)
}

// MonthlyTrends órdenes por mes calendario.
func (r *AnalyticsRepo) MonthlyTrends(ctx context.Context, start, end time.Time) ([]repository.NamedCount, error) {
	const query = `
	SELECT to_char(date_trunc('month', w.intake_date), 'YYYY-MM') AS month, COUNT(w.id)::int
	FROM work_orders w
	WHERE w.intake_date BETWEEN $1 AND $2
	GROUP BY month
	ORDER BY month`
	return r.namedCounts(ctx, "MonthlyTrends", query, start, end)
}

// ServiceDistribution órdenes por tipo de servicio.
func (r *AnalyticsRepo) ServiceDistribution(ctx context.Context, start, end time.Time) ([]repository.NamedCount, error) {
	const query = `
	SELECT s.name, COUNT(w.id)::int AS total
	FROM work_orders w
	JOIN service_types s ON s.id = w.service_type_id
	WHERE w.intake_date BETWEEN $1 AND $2
	GROUP BY s.name
	ORDER BY total DESC, s.name`
	return r.namedCounts(ctx, "ServiceDistribution", query, start, end)
}

// TopCities ciudades de los clientes con más órdenes. Ciudad desconocida -> nombre vacío.
func (r *AnalyticsRepo) TopCities(ctx context.Context, start, end time.Time, limit int) ([]repository.NamedCount, error) {
	const query = `
	SELECT COALESCE(c.city, '') AS city, COUNT(w.id)::int AS total
	FROM work_orders w
	JOIN clients c ON c.id = w.client_id
	WHERE w.intake_date BETWEEN $1 AND $2
	GROUP BY c.city
	ORDER BY total DESC, city
	LIMIT $3`
	return r.namedCounts(ctx, "TopCities", query, start, end, limit)
}

// OrderSerials una fila por orden con equipo en el período.
func (r *AnalyticsRepo) OrderSerials(ctx context.Context, start, end time.Time) ([]repository.SerialOccurrence, error) {
	const query = `
	SELECT w.id, COALESCE(e.serial, '')
	FROM work_orders w
	JOIN equipment e ON e.id = w.equipment_id
	WHERE w.intake_date BETWEEN $1 AND $2
	ORDER BY w.intake_date, w.id`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.OrderSerials: %w", err)
	}
	defer rows.Close()

	var results []repository.SerialOccurrence
	for rows.Next() {
		var row repository.SerialOccurrence
		if err := rows.Scan(&row.OrderID, &row.Serial); err != nil {
			return nil, fmt.Errorf("analytics.OrderSerials scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
