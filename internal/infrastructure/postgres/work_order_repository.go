package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Upsert reemplazo completo por ID; sin cambios no hay escritura.
func (r *WorkOrderRepo) Upsert(ctx context.Context, o *entity.WorkOrder) error {
	const query = `
		INSERT INTO work_orders (id, clave, intake_date, intake_type, workshop_order_number,
		                         field_order_number, production_order_number, status, notes,
		                         reported_damage, client_id, equipment_id, service_type_id,
		                         technician_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
		    clave                   = EXCLUDED.clave,
		    intake_date             = EXCLUDED.intake_date,
		    intake_type             = EXCLUDED.intake_type,
		    workshop_order_number   = EXCLUDED.workshop_order_number,
		    field_order_number      = EXCLUDED.field_order_number,
		    production_order_number = EXCLUDED.production_order_number,
		    status                  = EXCLUDED.status,
		    notes                   = EXCLUDED.notes,
		    reported_damage         = EXCLUDED.reported_damage,
		    client_id               = EXCLUDED.client_id,
		    equipment_id            = EXCLUDED.equipment_id,
		    service_type_id         = EXCLUDED.service_type_id,
		    technician_id           = EXCLUDED.technician_id,
		    updated_at              = EXCLUDED.updated_at
		WHERE (work_orders.clave, work_orders.intake_date, work_orders.intake_type,
		       work_orders.workshop_order_number, work_orders.field_order_number,
		       work_orders.production_order_number, work_orders.status, work_orders.notes,
		       work_orders.reported_damage, work_orders.client_id, work_orders.equipment_id,
		       work_orders.service_type_id, work_orders.technician_id)
		      IS DISTINCT FROM
		      (EXCLUDED.clave, EXCLUDED.intake_date, EXCLUDED.intake_type,
		       EXCLUDED.workshop_order_number, EXCLUDED.field_order_number,
		       EXCLUDED.production_order_number, EXCLUDED.status, EXCLUDED.notes,
		       EXCLUDED.reported_damage, EXCLUDED.client_id, EXCLUDED.equipment_id,
		       EXCLUDED.service_type_id, EXCLUDED.technician_id)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Key, o.IntakeDate, o.IntakeType, o.WorkshopOrderNumber,
		o.FieldOrderNumber, o.ProductionOrderNumber, o.Status, o.Notes,
		o.ReportedDamage, o.ClientID, o.EquipmentID, o.ServiceTypeID,
		o.TechnicianID, o.UpdatedAt,
	)
	if err != nil {
		return wrapWriteError("upsert work order", err)
	}
	return nil
}

const workOrderFields = `
	w.id, w.clave, w.intake_date, w.intake_type, w.workshop_order_number, w.field_order_number,
	w.production_order_number, w.status, w.notes, w.reported_damage, w.client_id, w.equipment_id,
	w.service_type_id, w.technician_id, w.updated_at,
	c.legal_name, s.name, t.name,
	e.serial, e.brand, e.model, e.type, e.capacity, e.sensitivity`

// workOrderFrom FROM con los catálogos; technicianJoin decide si la orden sin técnico aparece.
func workOrderFrom(technicianJoin string) string {
	return `
	FROM work_orders w
	LEFT JOIN clients       c ON c.id = w.client_id
	LEFT JOIN service_types s ON s.id = w.service_type_id
	` + technicianJoin + ` technicians t ON t.id = w.technician_id
	LEFT JOIN equipment     e ON e.id = w.equipment_id`
}

var workOrderColumns = workOrderFields + workOrderFrom("LEFT JOIN")

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	var eq entity.Equipment
	err := row.Scan(
		&o.ID, &o.Key, &o.IntakeDate, &o.IntakeType, &o.WorkshopOrderNumber, &o.FieldOrderNumber,
		&o.ProductionOrderNumber, &o.Status, &o.Notes, &o.ReportedDamage, &o.ClientID, &o.EquipmentID,
		&o.ServiceTypeID, &o.TechnicianID, &o.UpdatedAt,
		&o.ClientName, &o.ServiceName, &o.TechnicianName,
		&eq.Serial, &eq.Brand, &eq.Model, &eq.Type, &eq.Capacity, &eq.Sensitivity,
	)
	if err != nil {
		return nil, err
	}
	if o.EquipmentID != nil {
		eq.ID = *o.EquipmentID
		eq.ClientID = o.ClientID
		o.Equipment = &eq
	}
	return &o, nil
}

func (r *WorkOrderRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		o, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID obtiene una orden con sus nombres relacionados.
func (r *WorkOrderRepo) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	o, err := scanWorkOrder(r.q.QueryRow(ctx, `SELECT `+workOrderColumns+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return o, nil
}

// List órdenes por fecha de ingreso descendente (sin fecha al final).
func (r *WorkOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.WorkOrder, error) {
	limit, offset = clampPage(limit, offset)
	return r.list(ctx, "list work orders",
		`SELECT `+workOrderColumns+` ORDER BY w.intake_date DESC NULLS LAST, w.id LIMIT $1 OFFSET $2`,
		limit, offset)
}

// SearchByTechnician órdenes del período cuyo técnico contiene todas las partes del nombre.
// Sin partes no hay criterio: devuelve vacío en lugar de todas las órdenes.
func (r *WorkOrderRepo) SearchByTechnician(ctx context.Context, f repository.TechnicianReportFilter) ([]*entity.WorkOrder, error) {
	if len(f.NameParts) == 0 {
		return nil, nil
	}
	patterns := make([]string, 0, len(f.NameParts))
	for _, p := range f.NameParts {
		patterns = append(patterns, "%"+escapeLike(p)+"%")
	}
	return r.list(ctx, "search work orders by technician",
		`SELECT `+workOrderFields+workOrderFrom("JOIN")+`
		WHERE w.intake_date BETWEEN $1 AND $2
		  AND t.name ILIKE ALL ($3::text[])
		ORDER BY w.intake_date, w.id`,
		f.From, f.To, patterns)
}
