package repository

import (
	"context"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	// Upsert inserta o reemplaza por completo el cliente con el mismo ID.
	Upsert(ctx context.Context, client *entity.Client) error
	// EnsureExists crea un cliente fantasma "Cliente <id>" si el ID no existe.
	// Nunca modifica un cliente existente. created indica si se insertó.
	EnsureExists(ctx context.Context, id string) (created bool, err error)
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
}
