package ingestion

import "strings"

// Cell celda de una fila con el encabezado tal como viene en la hoja.
type Cell struct {
	Header string
	Value  string
}

// Row fila de la hoja en orden de columnas.
type Row []Cell

// Headers encabezados de la fila en orden de columnas.
func (r Row) Headers() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Header
	}
	return out
}

// DuplicateHeaders encabezados cuya forma normalizada se repite en la fila.
// Solo la primera aparición se usa al resolver campos.
func DuplicateHeaders(r Row) []string {
	seen := make(map[string]bool, len(r))
	var dups []string
	for _, c := range r {
		key := Normalize(c.Header)
		if key == "" {
			continue
		}
		if seen[key] {
			dups = append(dups, c.Header)
			continue
		}
		seen[key] = true
	}
	return dups
}

// FieldMap campo lógico -> encabezados normalizados aceptados, en orden de preferencia.
// Permite que un mismo campo acepte los nombres de columna históricos de la hoja.
type FieldMap map[string][]string

// Record fila con encabezados normalizados, lista para resolver campos lógicos.
type Record struct {
	fields FieldMap
	cells  map[string]string
}

// Record normaliza una vez los encabezados de la fila.
func (m FieldMap) Record(row Row) Record {
	cells := make(map[string]string, len(row))
	for _, c := range row {
		key := Normalize(c.Header)
		if key == "" {
			continue
		}
		if _, dup := cells[key]; dup {
			continue
		}
		cells[key] = c.Value
	}
	return Record{fields: m, cells: cells}
}

// Get devuelve el valor del primer encabezado aceptado que exista en la fila.
// Celda vacía (o solo espacios), encabezado ausente o campo desconocido -> nil, nunca "".
func (r Record) Get(field string) *string {
	for _, header := range r.fields[field] {
		v, ok := r.cells[header]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		return &v
	}
	return nil
}

// HasColumn indica si la fila trae alguna de las columnas aceptadas para field.
func (r Record) HasColumn(field string) bool {
	for _, header := range r.fields[field] {
		if _, ok := r.cells[header]; ok {
			return true
		}
	}
	return false
}
