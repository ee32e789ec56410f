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

var _ repository.FieldVisitRepository = (*FieldVisitRepo)(nil)

// FieldVisitRepo implementación de FieldVisitRepository (usable con pool o tx).
type FieldVisitRepo struct {
	q Querier
}

// NewFieldVisitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFieldVisitRepository(q Querier) *FieldVisitRepo {
	return &FieldVisitRepo{q: q}
}

// Upsert reemplazo completo por ID; sin cambios no hay escritura.
func (r *FieldVisitRepo) Upsert(ctx context.Context, v *entity.FieldVisit) error {
	const query = `
		INSERT INTO field_visits (id, code, zone, location, status, notes, report_link,
		                          last_visit_date, equipment_id, technician1_id, technician2_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
		    code            = EXCLUDED.code,
		    zone            = EXCLUDED.zone,
		    location        = EXCLUDED.location,
		    status          = EXCLUDED.status,
		    notes           = EXCLUDED.notes,
		    report_link     = EXCLUDED.report_link,
		    last_visit_date = EXCLUDED.last_visit_date,
		    equipment_id    = EXCLUDED.equipment_id,
		    technician1_id  = EXCLUDED.technician1_id,
		    technician2_id  = EXCLUDED.technician2_id,
		    updated_at      = EXCLUDED.updated_at
		WHERE (field_visits.code, field_visits.zone, field_visits.location, field_visits.status,
		       field_visits.notes, field_visits.report_link, field_visits.last_visit_date,
		       field_visits.equipment_id, field_visits.technician1_id, field_visits.technician2_id)
		      IS DISTINCT FROM
		      (EXCLUDED.code, EXCLUDED.zone, EXCLUDED.location, EXCLUDED.status,
		       EXCLUDED.notes, EXCLUDED.report_link, EXCLUDED.last_visit_date,
		       EXCLUDED.equipment_id, EXCLUDED.technician1_id, EXCLUDED.technician2_id)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Code, v.Zone, v.Location, v.Status, v.Notes, v.ReportLink,
		v.LastVisitDate, v.EquipmentID, v.Technician1ID, v.Technician2ID, v.UpdatedAt,
	)
	if err != nil {
		return wrapWriteError("upsert field visit", err)
	}
	return nil
}

const fieldVisitColumns = `
	v.id, v.code, v.zone, v.location, v.status, v.notes, v.report_link, v.last_visit_date,
	v.equipment_id, v.technician1_id, v.technician2_id, v.updated_at,
	t1.name, t2.name,
	e.serial, e.brand, e.model, e.type, e.capacity, e.sensitivity, e.client_id
	FROM field_visits v
	LEFT JOIN technicians t1 ON t1.id = v.technician1_id
	LEFT JOIN technicians t2 ON t2.id = v.technician2_id
	LEFT JOIN equipment   e  ON e.id  = v.equipment_id`

func scanFieldVisit(row pgx.Row) (*entity.FieldVisit, error) {
	var v entity.FieldVisit
	var eq entity.Equipment
	err := row.Scan(
		&v.ID, &v.Code, &v.Zone, &v.Location, &v.Status, &v.Notes, &v.ReportLink, &v.LastVisitDate,
		&v.EquipmentID, &v.Technician1ID, &v.Technician2ID, &v.UpdatedAt,
		&v.Technician1Name, &v.Technician2Name,
		&eq.Serial, &eq.Brand, &eq.Model, &eq.Type, &eq.Capacity, &eq.Sensitivity, &eq.ClientID,
	)
	if err != nil {
		return nil, err
	}
	if v.EquipmentID != nil {
		eq.ID = *v.EquipmentID
		v.Equipment = &eq
	}
	return &v, nil
}

// GetByID obtiene una visita con técnicos y equipo.
func (r *FieldVisitRepo) GetByID(ctx context.Context, id string) (*entity.FieldVisit, error) {
	v, err := scanFieldVisit(r.q.QueryRow(ctx, `SELECT `+fieldVisitColumns+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get field visit: %w", err)
	}
	return v, nil
}

// List visitas por última fecha descendente.
func (r *FieldVisitRepo) List(ctx context.Context, limit, offset int) ([]*entity.FieldVisit, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := r.q.Query(ctx,
		`SELECT `+fieldVisitColumns+` ORDER BY v.last_visit_date DESC NULLS LAST, v.id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list field visits: %w", err)
	}
	defer rows.Close()
	var list []*entity.FieldVisit
	for rows.Next() {
		v, err := scanFieldVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field visit: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
