package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/domain"
)

var _ ingestion.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunIngestion abre la transacción de una corrida de sincronización, ejecuta fn y confirma
// una sola vez. Cualquier error de fn o del commit deja la base como estaba.
func (r *TxRunner) RunIngestion(ctx context.Context, fn func(uow ingestion.UnitOfWork) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&unitOfWork{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return nil
}

type unitOfWork struct {
	tx pgx.Tx
}

// Savepoint usa una transacción anidada de pgx (SAVEPOINT / RELEASE / ROLLBACK TO).
// PostgreSQL invalida la transacción entera ante cualquier error de sentencia; el savepoint
// limita el daño a la fila que falló.
func (u *unitOfWork) Savepoint(ctx context.Context, fn func(r ingestion.Repos) error) error {
	sp, err := u.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	if err := fn(reposFor(sp)); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

func reposFor(q Querier) ingestion.Repos {
	return ingestion.Repos{
		Clients:     NewClientRepository(q),
		Catalogs:    NewCatalogRepository(q),
		Equipment:   NewEquipmentRepository(q),
		WorkOrders:  NewWorkOrderRepository(q),
		FieldVisits: NewFieldVisitRepository(q),
	}
}
