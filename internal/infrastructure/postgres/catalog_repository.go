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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// Tablas catálogo. Todas tienen (id BIGSERIAL, name TEXT UNIQUE).
var catalogTables = map[entity.CatalogKind]string{
	entity.CatalogIndustry:    "industries",
	entity.CatalogTechnician:  "technicians",
	entity.CatalogServiceType: "service_types",
}

// CatalogRepo get-or-create único para todos los catálogos.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func catalogTable(kind entity.CatalogKind) (string, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: catálogo %q", domain.ErrInvalidInput, kind)
	}
	return table, nil
}

// GetOrCreate inserta el nombre si no existe y devuelve su ID. Si otra transacción lo insertó
// en paralelo, el INSERT no devuelve fila y el SELECT del mismo snapshot tampoco la ve:
// se repite la lectura con un snapshot nuevo.
func (r *CatalogRepo) GetOrCreate(ctx context.Context, kind entity.CatalogKind, name string) (int64, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`
		WITH ins AS (
		    INSERT INTO %[1]s (name) VALUES ($1)
		    ON CONFLICT (name) DO NOTHING
		    RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM %[1]s WHERE name = $1
		LIMIT 1`, table)

	var id int64
	err = r.q.QueryRow(ctx, query, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.q.QueryRow(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, table), name).Scan(&id)
	}
	if err != nil {
		return 0, wrapWriteError(fmt.Sprintf("get or create %s", table), err)
	}
	return id, nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *CatalogRepo) List(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	list := []entity.CatalogItem{}
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
