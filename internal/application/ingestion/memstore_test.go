package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con transacción y savepoints (sustituye a PostgreSQL)
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	clients     map[string]entity.Client
	catalogs    map[entity.CatalogKind]map[string]int64
	equipment   map[string]entity.Equipment // por serie
	workOrders  map[string]entity.WorkOrder
	fieldVisits map[string]entity.FieldVisit
	nextID      int64
}

func newMemState() *memState {
	return &memState{
		clients:     map[string]entity.Client{},
		catalogs:    map[entity.CatalogKind]map[string]int64{},
		equipment:   map[string]entity.Equipment{},
		workOrders:  map[string]entity.WorkOrder{},
		fieldVisits: map[string]entity.FieldVisit{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	c.nextID = s.nextID
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for kind, names := range s.catalogs {
		c.catalogs[kind] = map[string]int64{}
		for n, id := range names {
			c.catalogs[kind][n] = id
		}
	}
	for k, v := range s.equipment {
		c.equipment[k] = v
	}
	for k, v := range s.workOrders {
		c.workOrders[k] = v
	}
	for k, v := range s.fieldVisits {
		c.fieldVisits[k] = v
	}
	return c
}

type memStore struct {
	mu        sync.Mutex
	committed *memState
	// rejectIDs IDs cuyo upsert falla (simula una violación de restricción).
	rejectIDs map[string]bool
	commitErr error
	commits   int
}

func newMemStore() *memStore {
	return &memStore{committed: newMemState(), rejectIDs: map[string]bool{}}
}

func (m *memStore) RunIngestion(ctx context.Context, fn func(uow UnitOfWork) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	uow := &memUnitOfWork{store: m, work: m.committed.clone()}
	if err := fn(uow); err != nil {
		return err
	}
	if m.commitErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, m.commitErr)
	}
	m.committed = uow.work
	m.commits++
	return nil
}

func (m *memStore) state() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed.clone()
}

type memUnitOfWork struct {
	store *memStore
	work  *memState
}

func (u *memUnitOfWork) Savepoint(ctx context.Context, fn func(r Repos) error) error {
	snapshot := u.work.clone()
	tx := &memTx{store: u.store, s: u.work}
	r := Repos{Clients: tx, Catalogs: memCatalogs{tx}, Equipment: memEquipment{tx}, WorkOrders: memWorkOrders{tx}, FieldVisits: memFieldVisits{tx}}
	if err := fn(r); err != nil {
		u.work = snapshot
		return err
	}
	return nil
}

type memTx struct {
	store *memStore
	s     *memState
}

var errRejected = errors.New("violates check constraint")

func (t *memTx) reject(id string) error {
	if t.store.rejectIDs[id] {
		return fmt.Errorf("id %s: %w", id, errRejected)
	}
	return nil
}

// ClientRepository

func (t *memTx) Upsert(_ context.Context, c *entity.Client) error {
	if err := t.reject(c.ID); err != nil {
		return err
	}
	t.s.clients[c.ID] = *c
	return nil
}

func (t *memTx) EnsureExists(_ context.Context, id string) (bool, error) {
	if _, ok := t.s.clients[id]; ok {
		return false, nil
	}
	t.s.clients[id] = entity.Client{ID: id, LegalName: entity.GhostClientName(id)}
	return true, nil
}

func (t *memTx) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := t.s.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (t *memTx) List(context.Context, int, int) ([]*entity.Client, error) {
	return nil, errors.New("not implemented")
}

type memCatalogs struct{ t *memTx }

func (c memCatalogs) GetOrCreate(_ context.Context, kind entity.CatalogKind, name string) (int64, error) {
	names := c.t.s.catalogs[kind]
	if names == nil {
		names = map[string]int64{}
		c.t.s.catalogs[kind] = names
	}
	if id, ok := names[name]; ok {
		return id, nil
	}
	c.t.s.nextID++
	names[name] = c.t.s.nextID
	return c.t.s.nextID, nil
}

func (c memCatalogs) List(_ context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error) {
	var out []entity.CatalogItem
	for n, id := range c.t.s.catalogs[kind] {
		out = append(out, entity.CatalogItem{ID: id, Name: n})
	}
	return out, nil
}

type memEquipment struct{ t *memTx }

func (e memEquipment) FindOrCreateBySerial(_ context.Context, eq *entity.Equipment) (int64, error) {
	if existing, ok := e.t.s.equipment[*eq.Serial]; ok {
		return existing.ID, nil
	}
	e.t.s.nextID++
	row := *eq
	row.ID = e.t.s.nextID
	e.t.s.equipment[*eq.Serial] = row
	return row.ID, nil
}

type memWorkOrders struct{ t *memTx }

func (w memWorkOrders) Upsert(_ context.Context, o *entity.WorkOrder) error {
	if err := w.t.reject(o.ID); err != nil {
		return err
	}
	w.t.s.workOrders[o.ID] = *o
	return nil
}

func (w memWorkOrders) GetByID(_ context.Context, id string) (*entity.WorkOrder, error) {
	o, ok := w.t.s.workOrders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (w memWorkOrders) List(context.Context, int, int) ([]*entity.WorkOrder, error) {
	return nil, errors.New("not implemented")
}

func (w memWorkOrders) SearchByTechnician(context.Context, repository.TechnicianReportFilter) ([]*entity.WorkOrder, error) {
	return nil, errors.New("not implemented")
}

type memFieldVisits struct{ t *memTx }

func (f memFieldVisits) Upsert(_ context.Context, v *entity.FieldVisit) error {
	if err := f.t.reject(v.ID); err != nil {
		return err
	}
	f.t.s.fieldVisits[v.ID] = *v
	return nil
}

func (f memFieldVisits) GetByID(_ context.Context, id string) (*entity.FieldVisit, error) {
	v, ok := f.t.s.fieldVisits[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (f memFieldVisits) List(context.Context, int, int) ([]*entity.FieldVisit, error) {
	return nil, errors.New("not implemented")
}

// ──────────────────────────────────────────────────────────────────────────────
// Origen de filas y métricas falsas
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	sheets map[string][]Row
	err    error
}

func (f *fakeSource) FetchRows(_ context.Context, sheet string) ([]Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sheets[sheet], nil
}

// table arma filas a partir de encabezados y valores, como las entrega la hoja.
func table(headers []string, values ...[]string) []Row {
	rows := make([]Row, 0, len(values))
	for _, vals := range values {
		row := make(Row, len(headers))
		for i, h := range headers {
			row[i] = Cell{Header: h}
			if i < len(vals) {
				row[i].Value = vals[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

type countingRecorder struct {
	mu   sync.Mutex
	rows map[string]int
	runs map[string]string
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{rows: map[string]int{}, runs: map[string]string{}}
}

func (c *countingRecorder) RowOutcome(entity, outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[entity+"/"+outcome]++
}

func (c *countingRecorder) RunFinished(entity, status string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs[entity] = status
}
