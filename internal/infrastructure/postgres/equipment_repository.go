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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación de EquipmentRepository (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// FindOrCreateBySerial devuelve el equipo más antiguo con esa serie o lo crea.
func (r *EquipmentRepo) FindOrCreateBySerial(ctx context.Context, eq *entity.Equipment) (int64, error) {
	if eq.Serial == nil {
		return 0, fmt.Errorf("%w: equipo sin serie", domain.ErrInvalidInput)
	}
	var id int64
	err := r.q.QueryRow(ctx, `SELECT id FROM equipment WHERE serial = $1 ORDER BY id LIMIT 1`, *eq.Serial).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("find equipment: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		INSERT INTO equipment (serial, brand, model, type, capacity, sensitivity, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		eq.Serial, eq.Brand, eq.Model, eq.Type, eq.Capacity, eq.Sensitivity, eq.ClientID,
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteError("insert equipment", err)
	}
	return id, nil
}
