package repository

import (
	"context"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// CatalogRepository puerto único para los catálogos (industrias, técnicos, tipos de servicio).
type CatalogRepository interface {
	// GetOrCreate devuelve el ID de la fila con ese nombre, creándola si no existe.
	// El ID queda visible para el resto de la transacción aunque no se haya confirmado.
	GetOrCreate(ctx context.Context, kind entity.CatalogKind, name string) (int64, error)
	List(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error)
}
