package repository

import (
	"context"
	"time"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// TechnicianReportFilter criterio de búsqueda de órdenes por técnico y período.
type TechnicianReportFilter struct {
	NameParts []string // cada parte debe aparecer en el nombre del técnico (ILIKE)
	From      time.Time
	To        time.Time // inclusive
}

// WorkOrderRepository define el puerto de persistencia para WorkOrder.
type WorkOrderRepository interface {
	// Upsert inserta o reemplaza por completo la orden con el mismo ID.
	Upsert(ctx context.Context, order *entity.WorkOrder) error
	GetByID(ctx context.Context, id string) (*entity.WorkOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.WorkOrder, error)
	SearchByTechnician(ctx context.Context, f TechnicianReportFilter) ([]*entity.WorkOrder, error)
}
