package ingestion

import (
	"context"
	"time"

	"github.com/jhoicas/productividad-api/internal/domain/repository"
)

// RowSource entrega las filas de datos de una hoja (sin la fila de encabezados) en orden.
// Los fallos de acceso se envuelven con domain.ErrSourceUnavailable.
type RowSource interface {
	FetchRows(ctx context.Context, sheet string) ([]Row, error)
}

// Repos repositorios atados a la transacción de una corrida.
type Repos struct {
	Clients     repository.ClientRepository
	Catalogs    repository.CatalogRepository
	Equipment   repository.EquipmentRepository
	WorkOrders  repository.WorkOrderRepository
	FieldVisits repository.FieldVisitRepository
}

// UnitOfWork transacción abierta de una corrida de sincronización.
type UnitOfWork interface {
	// Savepoint ejecuta fn dentro de un savepoint: si fn falla solo se deshacen
	// sus escrituras y la transacción sigue utilizable para las filas siguientes.
	Savepoint(ctx context.Context, fn func(r Repos) error) error
}

// TxRunner abre una transacción por corrida, ejecuta fn y confirma una sola vez.
// Si fn o el commit fallan, todo se revierte; un fallo de commit se envuelve con
// domain.ErrCommitFailed.
type TxRunner interface {
	RunIngestion(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// Recorder recibe métricas de las corridas. Las implementaciones deben ser seguras
// para uso concurrente (varias corridas pueden ejecutarse a la vez).
type Recorder interface {
	RowOutcome(entity, outcome string)
	RunFinished(entity, status string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RowOutcome(string, string)                 {}
func (nopRecorder) RunFinished(string, string, time.Duration) {}
