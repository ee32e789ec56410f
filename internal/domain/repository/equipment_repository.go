package repository

import (
	"context"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// EquipmentRepository define el puerto de persistencia para Equipment.
type EquipmentRepository interface {
	// FindOrCreateBySerial busca un equipo por serie; si no hay ninguno lo crea con los
	// datos recibidos. eq.Serial es obligatorio.
	FindOrCreateBySerial(ctx context.Context, eq *entity.Equipment) (int64, error)
}
