package entity

import "time"

// Client representa un cliente sincronizado desde la hoja "Clientes".
// ID es el identificador externo de la hoja (clave de negocio).
type Client struct {
	ID           string
	Key          *string // columna "clave"
	LegalName    string  // nunca vacío: placeholder "Cliente <id>" si la hoja no lo trae
	TaxID        *string // RUC / C.I.
	Province     *string
	City         *string
	Address      *string
	Contact      *string
	Phone        *string
	Email        *string
	IndustryID   *int64
	IndustryName *string // solo lectura (join)
	Advisor      *string
	Notes        *string
	UpdatedAt    time.Time
}

// GhostClientName nombre provisional de un cliente creado solo para satisfacer una referencia.
func GhostClientName(id string) string {
	return "Cliente " + id
}
