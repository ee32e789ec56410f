// Package sheets lee las hojas operativas desde la API de Google Sheets.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/domain"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var _ ingestion.RowSource = (*Source)(nil)

// Source implementa ingestion.RowSource sobre un libro de Google Sheets.
type Source struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewSource autentica con la cuenta de servicio (JSON en credentialsFile) con permiso de solo lectura.
func NewSource(ctx context.Context, spreadsheetID, credentialsFile string) (*Source, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: SHEETS_SPREADSHEET_ID no configurado")
	}
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear cliente: %w", err)
	}
	return NewSourceWithService(svc, spreadsheetID), nil
}

// NewSourceWithService usa un cliente ya construido (tests, credenciales alternativas).
func NewSourceWithService(svc *gsheets.Service, spreadsheetID string) *Source {
	return &Source{svc: svc, spreadsheetID: spreadsheetID}
}

// FetchRows lee la hoja completa con valores formateados (todo llega como texto).
// La primera fila es el encabezado y no se devuelve como dato.
func (s *Source) FetchRows(ctx context.Context, sheet string) ([]ingestion.Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, quoteSheet(sheet)).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: hoja %q: %v", domain.ErrSourceUnavailable, sheet, err)
	}
	return rowsFromValues(resp.Values), nil
}

// quoteSheet rango A1 de la hoja completa; las comillas simples permiten espacios y tildes.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// rowsFromValues asocia cada celda a su encabezado. La API omite las celdas vacías al
// final de una fila: se completan con "". Celdas más allá del encabezado se descartan.
func rowsFromValues(values [][]any) []ingestion.Row {
	if len(values) == 0 {
		return nil
	}
	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = cellText(h)
	}

	rows := make([]ingestion.Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(ingestion.Row, len(headers))
		for i, h := range headers {
			row[i].Header = h
			if i < len(raw) {
				row[i].Value = cellText(raw[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type unavailableSource struct{ cause error }

// Unavailable origen que siempre falla con la causa dada. La API arranca igual sin
// credenciales de Google y las corridas de sincronización responden 502.
func Unavailable(cause error) ingestion.RowSource {
	return unavailableSource{cause: cause}
}

func (u unavailableSource) FetchRows(_ context.Context, sheet string) ([]ingestion.Row, error) {
	return nil, fmt.Errorf("%w: hoja %q: %v", domain.ErrSourceUnavailable, sheet, u.cause)
}
