package dto

import "time"

// ClientResponse cliente sincronizado.
type ClientResponse struct {
	ID        string    `json:"id"`
	Key       *string   `json:"clave"`
	LegalName string    `json:"legal_name"`
	TaxID     *string   `json:"tax_id"`
	Province  *string   `json:"province"`
	City      *string   `json:"city"`
	Address   *string   `json:"address"`
	Contact   *string   `json:"contact"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Industry  *string   `json:"industry"`
	Advisor   *string   `json:"advisor"`
	Notes     *string   `json:"notes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EquipmentResponse equipo asociado a una orden o visita.
type EquipmentResponse struct {
	ID          int64   `json:"id"`
	Serial      *string `json:"serial"`
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Type        *string `json:"type"`
	Capacity    *string `json:"capacity"`
	Sensitivity *string `json:"sensitivity"`
}

// WorkOrderResponse orden de trabajo con nombres resueltos.
type WorkOrderResponse struct {
	ID             string             `json:"id"`
	OrderNumber    string             `json:"order_number"`
	IntakeDate     *string            `json:"intake_date"` // YYYY-MM-DD
	IntakeType     *string            `json:"intake_type"`
	Status         *string            `json:"status"`
	Notes          *string            `json:"notes"`
	ReportedDamage *string            `json:"reported_damage"`
	ClientID       *string            `json:"client_id"`
	ClientName     *string            `json:"client_name"`
	Service        *string            `json:"service"`
	Technician     *string            `json:"technician"`
	Equipment      *EquipmentResponse `json:"equipment"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// FieldVisitResponse visita de campo con técnicos y equipo.
type FieldVisitResponse struct {
	ID            string             `json:"id"`
	Code          *string            `json:"code"`
	Zone          *string            `json:"zone"`
	Location      *string            `json:"location"`
	Status        *string            `json:"status"`
	Notes         *string            `json:"notes"`
	ReportLink    *string            `json:"report_link"`
	LastVisitDate *string            `json:"last_visit_date"`
	Technician1   *string            `json:"technician_1"`
	Technician2   *string            `json:"technician_2"`
	Equipment     *EquipmentResponse `json:"equipment"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ListResponse envoltorio de listados paginados.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}
