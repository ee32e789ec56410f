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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Upsert reemplaza todas las columnas en conflicto. Si nada cambió la fila no se toca
// (updated_at incluido), así una corrida repetida no genera escrituras.
func (r *ClientRepo) Upsert(ctx context.Context, c *entity.Client) error {
	const query = `
		INSERT INTO clients (id, clave, legal_name, tax_id, province, city, address, contact,
		                     phone, email, industry_id, advisor, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
		    clave       = EXCLUDED.clave,
		    legal_name  = EXCLUDED.legal_name,
		    tax_id      = EXCLUDED.tax_id,
		    province    = EXCLUDED.province,
		    city        = EXCLUDED.city,
		    address     = EXCLUDED.address,
		    contact     = EXCLUDED.contact,
		    phone       = EXCLUDED.phone,
		    email       = EXCLUDED.email,
		    industry_id = EXCLUDED.industry_id,
		    advisor     = EXCLUDED.advisor,
		    notes       = EXCLUDED.notes,
		    updated_at  = EXCLUDED.updated_at
		WHERE (clients.clave, clients.legal_name, clients.tax_id, clients.province, clients.city,
		       clients.address, clients.contact, clients.phone, clients.email, clients.industry_id,
		       clients.advisor, clients.notes)
		      IS DISTINCT FROM
		      (EXCLUDED.clave, EXCLUDED.legal_name, EXCLUDED.tax_id, EXCLUDED.province, EXCLUDED.city,
		       EXCLUDED.address, EXCLUDED.contact, EXCLUDED.phone, EXCLUDED.email, EXCLUDED.industry_id,
		       EXCLUDED.advisor, EXCLUDED.notes)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Key, c.LegalName, c.TaxID, c.Province, c.City, c.Address, c.Contact,
		c.Phone, c.Email, c.IndustryID, c.Advisor, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return wrapWriteError("upsert client", err)
	}
	return nil
}

// EnsureExists inserta el cliente fantasma solo si el ID no existe.
func (r *ClientRepo) EnsureExists(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO clients (id, legal_name, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO NOTHING`, id, entity.GhostClientName(id))
	if err != nil {
		return false, wrapWriteError("ensure client", err)
	}
	return tag.RowsAffected() == 1, nil
}

const clientColumns = `
	c.id, c.clave, c.legal_name, c.tax_id, c.province, c.city, c.address, c.contact,
	c.phone, c.email, c.industry_id, i.name, c.advisor, c.notes, c.updated_at
	FROM clients c
	LEFT JOIN industries i ON i.id = c.industry_id`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Key, &c.LegalName, &c.TaxID, &c.Province, &c.City, &c.Address, &c.Contact,
		&c.Phone, &c.Email, &c.IndustryID, &c.IndustryName, &c.Advisor, &c.Notes, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene un cliente con el nombre de su industria.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes por nombre con paginación.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` ORDER BY c.legal_name, c.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
