package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	defaultPeriodDays = 180
	topCitiesLimit    = 10
	unknownCity       = "S/N"
	dateLayout        = "2006-01-02"
)

var hundred = decimal.NewFromInt(100)

// AnalyticsUseCase arma el tablero de productividad de un período:
//   - Órdenes por técnico, por mes y por tipo de servicio.
//   - Top de ciudades.
//   - KPI de calidad a partir de las reincidencias de equipos.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetDashboard consulta las cinco métricas en paralelo (son independientes entre sí).
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardDTO, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	type countsResult struct {
		rows []repository.NamedCount
		err  error
	}
	type serialsResult struct {
		rows []repository.SerialOccurrence
		err  error
	}

	techChan := make(chan countsResult, 1)
	trendChan := make(chan countsResult, 1)
	servChan := make(chan countsResult, 1)
	cityChan := make(chan countsResult, 1)
	serialChan := make(chan serialsResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.TechnicianTotals(ctx, start, end)
		techChan <- countsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.MonthlyTrends(ctx, start, end)
		trendChan <- countsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.ServiceDistribution(ctx, start, end)
		servChan <- countsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.TopCities(ctx, start, end, topCitiesLimit)
		cityChan <- countsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.OrderSerials(ctx, start, end)
		serialChan <- serialsResult{rows, err}
	}()

	techRes, trendRes, servRes, cityRes, serialRes := <-techChan, <-trendChan, <-servChan, <-cityChan, <-serialChan

	switch {
	case techRes.err != nil:
		return nil, fmt.Errorf("analytics: técnicos: %w", techRes.err)
	case trendRes.err != nil:
		return nil, fmt.Errorf("analytics: tendencias: %w", trendRes.err)
	case servRes.err != nil:
		return nil, fmt.Errorf("analytics: servicios: %w", servRes.err)
	case cityRes.err != nil:
		return nil, fmt.Errorf("analytics: ciudades: %w", cityRes.err)
	case serialRes.err != nil:
		return nil, fmt.Errorf("analytics: series: %w", serialRes.err)
	}

	out := &dto.DashboardDTO{
		Period:      fmt.Sprintf("%s al %s", start.Format(dateLayout), end.Format(dateLayout)),
		Technicians: make([]dto.TechnicianTotalDTO, 0, len(techRes.rows)),
		Trends:      make([]dto.TrendPointDTO, 0, len(trendRes.rows)),
		Services:    make([]dto.ServiceShareDTO, 0, len(servRes.rows)),
		Locations:   make([]dto.CityCountDTO, 0, len(cityRes.rows)),
		QualityKPI:  QualityKPI(serialRes.rows),
	}
	for _, r := range techRes.rows {
		out.Technicians = append(out.Technicians, dto.TechnicianTotalDTO{Name: r.Name, Total: r.Count})
	}
	for _, r := range trendRes.rows {
		out.Trends = append(out.Trends, dto.TrendPointDTO{Date: r.Name, Count: r.Count})
	}
	for _, r := range servRes.rows {
		out.Services = append(out.Services, dto.ServiceShareDTO{Name: r.Name, Value: r.Count})
	}
	for _, r := range cityRes.rows {
		city := r.Name
		if strings.TrimSpace(city) == "" {
			city = unknownCity
		}
		out.Locations = append(out.Locations, dto.CityCountDTO{City: city, Count: r.Count})
	}
	return out, nil
}

// QualityKPI reincidencias: una serie válida (más de 3 caracteres y distinta de "S/N")
// que aparece dos o más veces en el período cuenta una sola vez.
// tasa = max(0, 100 - reincidencias/total*100) con un decimal; 100 si no hay trabajos.
func QualityKPI(orders []repository.SerialOccurrence) dto.QualityKPIDTO {
	seen := make(map[string]int, len(orders))
	recurrences := 0
	for _, o := range orders {
		serial := strings.ToUpper(strings.TrimSpace(o.Serial))
		if len([]rune(serial)) <= 3 || serial == "S/N" {
			continue
		}
		seen[serial]++
		if seen[serial] == 2 {
			recurrences++
		}
	}

	kpi := dto.QualityKPIDTO{
		TotalJobs:   len(orders),
		Recurrences: recurrences,
		QualityRate: hundred,
	}
	if kpi.TotalJobs > 0 {
		failPct := decimal.NewFromInt(int64(recurrences)).Div(decimal.NewFromInt(int64(kpi.TotalJobs))).Mul(hundred)
		kpi.QualityRate = decimal.Max(decimal.Zero, hundred.Sub(failPct)).Round(1)
	}
	return kpi
}

// parsePeriod fechas YYYY-MM-DD inclusivas. Sin fin: hoy. Sin inicio: fin - 180 días.
func parsePeriod(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	if endStr == "" {
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		end, err = time.Parse(dateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido: %v", domain.ErrInvalidInput, err)
		}
	}

	if startStr == "" {
		start = end.AddDate(0, 0, -defaultPeriodDays)
	} else {
		start, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido: %v", domain.ErrInvalidInput, err)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}
