package entity

import "time"

// OrderStatusPending estado mostrado cuando la orden no tiene estado.
const OrderStatusPending = "Pendiente"

// NoOrderNumber se muestra cuando ninguna numeración está presente.
const NoOrderNumber = "S/N"

// WorkOrder orden de trabajo (hoja "Ingresos"). ID es el identificador externo.
type WorkOrder struct {
	ID                    string
	Key                   *string
	IntakeDate            *time.Time
	IntakeType            *string
	WorkshopOrderNumber   *string
	FieldOrderNumber      *string
	ProductionOrderNumber *string
	Status                *string
	Notes                 *string
	ReportedDamage        *string
	ClientID              *string
	EquipmentID           *int64
	ServiceTypeID         *int64
	TechnicianID          *int64
	UpdatedAt             time.Time

	// Solo lectura (joins).
	ClientName     *string
	ServiceName    *string
	TechnicianName *string
	Equipment      *Equipment
}

// OrderNumber devuelve la primera numeración no vacía: taller, campo, producción.
func (w *WorkOrder) OrderNumber() string {
	for _, n := range []*string{w.WorkshopOrderNumber, w.FieldOrderNumber, w.ProductionOrderNumber} {
		if n != nil && *n != "" {
			return *n
		}
	}
	return NoOrderNumber
}
