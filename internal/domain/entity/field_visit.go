package entity

import "time"

// FieldVisit visita de campo (hoja "Campo"). ID es el identificador externo.
type FieldVisit struct {
	ID            string
	Code          *string
	Zone          *string // agencia / zona
	Location      *string
	Status        *string
	Notes         *string
	ReportLink    *string
	LastVisitDate *time.Time
	EquipmentID   *int64
	Technician1ID *int64
	Technician2ID *int64
	UpdatedAt     time.Time

	// Solo lectura (joins).
	Technician1Name *string
	Technician2Name *string
	Equipment       *Equipment
}
