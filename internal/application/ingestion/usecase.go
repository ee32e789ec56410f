// Package ingestion sincroniza las hojas de cálculo operativas (clientes, órdenes de
// trabajo, visitas de campo) hacia PostgreSQL con semántica de upsert.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/pkg/logger"
)

// Entidades sincronizables (también etiquetas de métricas).
const (
	EntityClients     = "clients"
	EntityWorkOrders  = "work_orders"
	EntityFieldVisits = "field_visits"
)

// Resultados por fila para métricas.
const (
	outcomeProcessed = "processed"
	outcomeSkipped   = "skipped"
	outcomeFailed    = "failed"
)

// Sheets nombres de las hojas por tipo de registro.
type Sheets struct {
	Clients     string
	WorkOrders  string
	FieldVisits string
}

// SyncUseCase ejecuta las corridas de sincronización. Cada corrida es secuencial y usa
// su propia transacción; corridas distintas pueden ejecutarse en paralelo.
type SyncUseCase struct {
	source   RowSource
	tx       TxRunner
	sheets   Sheets
	log      *logger.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configura SyncUseCase.
type Option func(*SyncUseCase)

// WithRecorder registra métricas de cada corrida.
func WithRecorder(r Recorder) Option {
	return func(uc *SyncUseCase) {
		if r != nil {
			uc.recorder = r
		}
	}
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *SyncUseCase) { uc.now = now }
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(source RowSource, tx TxRunner, sheets Sheets, log *logger.Logger, opts ...Option) *SyncUseCase {
	uc := &SyncUseCase{
		source:   source,
		tx:       tx,
		sheets:   sheets,
		log:      log.Named("ingestion"),
		recorder: nopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// job describe la corrida de una hoja: dónde leer, cómo resolver la clave y cómo guardar.
type job struct {
	entity   string
	sheet    string
	fields   FieldMap
	keyField string
	apply    func(ctx context.Context, r Repos, key string, rec Record, now time.Time) error
}

// SyncClients sincroniza la hoja de clientes.
func (uc *SyncUseCase) SyncClients(ctx context.Context) *dto.SyncResult {
	return uc.run(ctx, job{
		entity:   EntityClients,
		sheet:    uc.sheets.Clients,
		fields:   clientFields,
		keyField: fieldID,
		apply:    uc.applyClient,
	})
}

// SyncWorkOrders sincroniza la hoja de ingresos (órdenes de trabajo).
func (uc *SyncUseCase) SyncWorkOrders(ctx context.Context) *dto.SyncResult {
	return uc.run(ctx, job{
		entity:   EntityWorkOrders,
		sheet:    uc.sheets.WorkOrders,
		fields:   workOrderFields,
		keyField: fieldID,
		apply:    uc.applyWorkOrder,
	})
}

// SyncFieldVisits sincroniza la hoja de visitas de campo.
func (uc *SyncUseCase) SyncFieldVisits(ctx context.Context) *dto.SyncResult {
	return uc.run(ctx, job{
		entity:   EntityFieldVisits,
		sheet:    uc.sheets.FieldVisits,
		fields:   fieldVisitFields,
		keyField: fieldID,
		apply:    uc.applyFieldVisit,
	})
}

// SyncAll ejecuta clientes, órdenes y visitas en ese orden, para que los clientes
// fantasma creados por las órdenes ya existan enriquecidos al terminar.
// Una corrida fallida no impide las siguientes.
func (uc *SyncUseCase) SyncAll(ctx context.Context) []*dto.SyncResult {
	return []*dto.SyncResult{
		uc.SyncClients(ctx),
		uc.SyncWorkOrders(ctx),
		uc.SyncFieldVisits(ctx),
	}
}

// run: fetch -> validar encabezados -> filas en orden (savepoint por fila) -> commit único.
func (uc *SyncUseCase) run(ctx context.Context, j job) *dto.SyncResult {
	started := uc.now()
	res := &dto.SyncResult{
		RunID:     uuid.NewString(),
		Entity:    j.entity,
		Sheet:     j.sheet,
		StartedAt: started,
	}
	log := uc.log.ForRun(res.RunID, j.entity, j.sheet)
	log.Info().Msg("sincronización iniciada")

	defer func() {
		elapsed := uc.now().Sub(started)
		res.DurationMS = elapsed.Milliseconds()
		uc.recorder.RunFinished(j.entity, res.Status, elapsed)
	}()

	rows, err := uc.source.FetchRows(ctx, j.sheet)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}
		log.Error().Err(err).Msg("no se pudo leer la hoja")
		return failed(res, err)
	}
	if len(rows) == 0 {
		err := fmt.Errorf("%w: %q", domain.ErrEmptySource, j.sheet)
		log.Error().Err(err).Msg("hoja vacía")
		return failed(res, err)
	}

	headers := rows[0].Headers()
	log.Debug().Strs("headers", headers).Int("rows", len(rows)).Msg("encabezados recibidos")
	if !j.fields.Record(rows[0]).HasColumn(j.keyField) {
		err := fmt.Errorf("%w: se esperaba una de %v; encabezados: %s",
			domain.ErrMissingKeyColumn, j.fields[j.keyField], strings.Join(headers, ", "))
		log.Error().Err(err).Msg("encabezados inválidos")
		return failed(res, err)
	}
	if dups := DuplicateHeaders(rows[0]); len(dups) > 0 {
		log.Warn().Strs("duplicated", dups).Msg("columnas repetidas: se usa la primera aparición")
	}

	var counts dto.SyncCounts
	// Resultados por fila; se publican solo si la corrida se confirma.
	outcomes := make([]string, 0, len(rows))
	err = uc.tx.RunIngestion(ctx, func(uow UnitOfWork) error {
		counts = dto.SyncCounts{}
		outcomes = outcomes[:0]
		for i, row := range rows {
			rec := j.fields.Record(row)
			key := rec.Get(j.keyField)
			if key == nil {
				counts.Skipped++
				outcomes = append(outcomes, outcomeSkipped)
				continue
			}
			err := uow.Savepoint(ctx, func(r Repos) error {
				return j.apply(ctx, r, *key, rec, started)
			})
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				counts.Failed++
				outcomes = append(outcomes, outcomeFailed)
				// +2: la fila 1 de la hoja es el encabezado.
				log.Warn().Err(err).Int("row", i+2).Str("key", *key).Msg("fila omitida por error al guardar")
				continue
			}
			counts.Processed++
			outcomes = append(outcomes, outcomeProcessed)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("sincronización revertida")
		return failed(res, err)
	}
	for _, o := range outcomes {
		uc.recorder.RowOutcome(j.entity, o)
	}
	res.Counts = counts

	res.Status = dto.SyncSuccess
	if counts.Failed > 0 || counts.Skipped > 0 || counts.Processed == 0 {
		res.Status = dto.SyncWarning
	}
	res.Message = fmt.Sprintf("Sincronizados: %d, omitidos sin ID: %d, con error: %d",
		counts.Processed, counts.Skipped, counts.Failed)
	log.Info().
		Int("processed", counts.Processed).
		Int("skipped", counts.Skipped).
		Int("failed", counts.Failed).
		Str("status", res.Status).
		Msg("sincronización finalizada")
	return res
}

func failed(res *dto.SyncResult, err error) *dto.SyncResult {
	res.Status = dto.SyncError
	res.Message = err.Error()
	res.Err = err
	return res
}
