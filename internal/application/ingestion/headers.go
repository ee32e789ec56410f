package ingestion

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize convierte un encabezado de hoja en una clave estable: minúsculas, sin tildes
// y solo [a-z0-9]. "Nº Orden Taller " -> "nordentaller", "Daño balanza" -> "danobalanza".
func Normalize(header string) string {
	lower := strings.ToLower(header)
	// transform.Chain guarda estado: uno por llamada.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(stripMarks, lower)
	if err != nil {
		decomposed = lower
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanonicalName nombre de catálogo canónico: espacios colapsados y Title Case en español.
// "  juan   PEREZ " -> "Juan Perez". Devuelve "" si no queda texto.
func CanonicalName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	if collapsed == "" {
		return ""
	}
	return cases.Title(language.Spanish).String(collapsed)
}
