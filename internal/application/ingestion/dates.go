package ingestion

import (
	"strings"
	"time"
)

// Las hojas se llenan en formato día/mes/año; se aceptan también fechas ISO.
var sheetDateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"2006/01/02",
}

// parseSheetDate interpreta la fecha de una celda ignorando la hora si viene.
// Un valor que no se puede interpretar devuelve nil (la fecha queda vacía).
func parseSheetDate(v *string) *time.Time {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
