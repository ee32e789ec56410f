package repository

import (
	"context"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// FieldVisitRepository define el puerto de persistencia para FieldVisit.
type FieldVisitRepository interface {
	// Upsert inserta o reemplaza por completo la visita con el mismo ID.
	Upsert(ctx context.Context, visit *entity.FieldVisit) error
	GetByID(ctx context.Context, id string) (*entity.FieldVisit, error)
	List(ctx context.Context, limit, offset int) ([]*entity.FieldVisit, error)
}
