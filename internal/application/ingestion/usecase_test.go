package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/pkg/logger"
)

var testSheets = Sheets{Clients: "Clientes", WorkOrders: "Ingresos", FieldVisits: "Campo"}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(src *fakeSource, store *memStore, opts ...Option) *SyncUseCase {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewSyncUseCase(src, store, testSheets, logger.Nop(), opts...)
}

var clientHeaders = []string{"ID", "Nombre", "RUC", "Ciudad", "Industria", "Teléfono"}

var orderHeaders = []string{"ID", "Fecha Ingreso", "Cliente", "Servicio", "Técnico Ejecución", "Estado", "Serie", "Marca", "Nº Orden Taller"}

// ──────────────────────────────────────────────────────────────────────────────
// Corridas de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncClients_FilaSinIDSeOmiteSinAbortar(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders,
			[]string{"C1", "Acme", "0991", "Quito", "Minería", "099"},
			[]string{"", "Sin id", "", "", "", ""},
			[]string{"C2", "Beta", "0992", "Guayaquil", "", ""},
		),
	}}

	rec := newCountingRecorder()

	res := newTestUseCase(src, store, WithRecorder(rec)).SyncClients(context.Background())

	assert.Equal(t, dto.SyncWarning, res.Status, "una fila omitida confirma la corrida como advertencia")
	assert.Equal(t, dto.SyncCounts{Processed: 2, Skipped: 1}, res.Counts)
	assert.Equal(t, 2, rec.rows["clients/processed"])
	assert.Equal(t, 1, rec.rows["clients/skipped"])
	assert.Equal(t, dto.SyncWarning, rec.runs["clients"])
	assert.Equal(t, "Sincronizados: 2, omitidos sin ID: 1, con error: 0", res.Message)
	assert.NotEmpty(t, res.RunID)

	st := store.state()
	require.Len(t, st.clients, 2)
	assert.Equal(t, "Acme", st.clients["C1"].LegalName)
	require.NotNil(t, st.clients["C1"].IndustryID)
	assert.Nil(t, st.clients["C2"].IndustryID, "industria vacía no crea catálogo")
	assert.Nil(t, st.clients["C2"].Phone, "celda vacía -> nil")
	assert.Equal(t, 1, store.commits)
}

func TestSyncClients_ProcesadasYOmitidasEsAdvertencia(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders,
			[]string{"C1", "Acme"},
			[]string{"", "Sin id"},
		),
	}}

	res := newTestUseCase(src, store).SyncClients(context.Background())

	assert.Equal(t, dto.SyncWarning, res.Status)
	assert.Equal(t, dto.SyncCounts{Processed: 1, Skipped: 1}, res.Counts)
	assert.Equal(t, 1, store.commits, "la advertencia igual confirma")
	assert.Contains(t, store.state().clients, "C1")
}

func TestSyncClients_TodasGuardadasEsExito(t *testing.T) {
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders, []string{"C1", "Acme"}, []string{"C2", "Beta"}),
	}}

	res := newTestUseCase(src, newMemStore()).SyncClients(context.Background())

	assert.Equal(t, dto.SyncSuccess, res.Status)
	assert.Equal(t, dto.SyncCounts{Processed: 2}, res.Counts)
}

func TestSyncClients_ReemplazoCompleto(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders, []string{"X", "Acme", "0991", "Quito", "", "099"}),
	}}
	uc := newTestUseCase(src, store)
	require.Equal(t, dto.SyncSuccess, uc.SyncClients(context.Background()).Status)

	src.sheets["Clientes"] = table(clientHeaders, []string{"X", "Acme", "0991", "Quito", "", ""})
	require.Equal(t, dto.SyncSuccess, uc.SyncClients(context.Background()).Status)

	c := store.state().clients["X"]
	assert.Nil(t, c.Phone, "un valor vacío reemplaza al anterior")
	require.NotNil(t, c.City)
	assert.Equal(t, "Quito", *c.City)
}

func TestSyncClients_SinNombreUsaNombreFantasma(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table([]string{"ID", "Ciudad"}, []string{"C7", "Loja"}),
	}}

	newTestUseCase(src, store).SyncClients(context.Background())

	assert.Equal(t, "Cliente C7", store.state().clients["C7"].LegalName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de trabajo
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncWorkOrders_ClienteFantasmaLuegoEnriquecido(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Ingresos": table(orderHeaders,
			[]string{"O1", "05/03/2025", "C99", "calibración", "juan perez", "Entregado", "SN-100", "Mettler", "T-1"},
		),
		"Clientes": table(clientHeaders, []string{"C99", "Industrias Reales", "0999", "Cuenca", "", ""}),
	}}
	uc := newTestUseCase(src, store)

	res := uc.SyncWorkOrders(context.Background())
	require.Equal(t, dto.SyncSuccess, res.Status)
	assert.Equal(t, "Cliente C99", store.state().clients["C99"].LegalName)

	res = uc.SyncClients(context.Background())
	require.Equal(t, dto.SyncSuccess, res.Status)
	assert.Equal(t, "Industrias Reales", store.state().clients["C99"].LegalName)

	// Una nueva corrida de órdenes no vuelve a pisar el cliente enriquecido.
	uc.SyncWorkOrders(context.Background())
	assert.Equal(t, "Industrias Reales", store.state().clients["C99"].LegalName)
}

func TestSyncWorkOrders_Idempotente(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Ingresos": table(orderHeaders,
			[]string{"O1", "05/03/2025", "C1", "Calibración", "Juan Perez", "Entregado", "SN-100", "Mettler", "T-1"},
			[]string{"O2", "2025-03-06", "C1", "Mantenimiento", "Ana Ruiz", "", "SN-100", "Mettler", ""},
		),
	}}
	uc := newTestUseCase(src, store)

	uc.SyncWorkOrders(context.Background())
	first := store.state()
	res := uc.SyncWorkOrders(context.Background())
	second := store.state()

	assert.Equal(t, dto.SyncSuccess, res.Status)
	assert.Equal(t, first.workOrders, second.workOrders)
	assert.Equal(t, first.clients, second.clients)
	assert.Equal(t, first.catalogs, second.catalogs)
	assert.Len(t, second.equipment, 1, "la misma serie reutiliza el equipo")
	assert.Equal(t, first.nextID, second.nextID, "sin filas nuevas en la segunda corrida")
}

func TestSyncWorkOrders_CatalogoConverge(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Ingresos": table(orderHeaders,
			[]string{"O1", "", "", "", "juan perez"},
			[]string{"O2", "", "", "", "Juan Perez"},
			[]string{"O3", "", "", "", "  JUAN   PEREZ "},
		),
	}}

	res := newTestUseCase(src, store).SyncWorkOrders(context.Background())
	require.Equal(t, 3, res.Counts.Processed)

	st := store.state()
	require.Len(t, st.catalogs[entity.CatalogTechnician], 1)
	id := st.catalogs[entity.CatalogTechnician]["Juan Perez"]
	for _, o := range st.workOrders {
		require.NotNil(t, o.TechnicianID)
		assert.Equal(t, id, *o.TechnicianID)
	}
}

func TestSyncWorkOrders_CamposDeLaFila(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Ingresos": table(orderHeaders,
			[]string{"O1", "05/03/2025 10:30", "C1", "calibracion", "", "", "S/N", "", "T-9"},
			[]string{"O2", "no es fecha", "", "", "", "", "", "", ""},
		),
	}}

	newTestUseCase(src, store).SyncWorkOrders(context.Background())

	st := store.state()
	o1 := st.workOrders["O1"]
	require.NotNil(t, o1.IntakeDate)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), *o1.IntakeDate)
	assert.Nil(t, o1.EquipmentID, "S/N no identifica un equipo")
	assert.Nil(t, o1.TechnicianID)
	require.NotNil(t, o1.ServiceTypeID)
	require.NotNil(t, o1.WorkshopOrderNumber)
	assert.Equal(t, "T-9", *o1.WorkshopOrderNumber)
	assert.Equal(t, fixedNow, o1.UpdatedAt)
	assert.Empty(t, st.equipment)

	o2 := st.workOrders["O2"]
	assert.Nil(t, o2.IntakeDate, "fecha inválida queda vacía")
	assert.Nil(t, o2.ClientID)
}

func TestSyncWorkOrders_FilaRechazadaNoDejaRastros(t *testing.T) {
	store := newMemStore()
	store.rejectIDs["O2"] = true
	src := &fakeSource{sheets: map[string][]Row{
		"Ingresos": table(orderHeaders,
			[]string{"O1", "", "C1"},
			[]string{"O2", "", "C2", "Nuevo Servicio"},
			[]string{"O3", "", "C1"},
		),
	}}
	rec := newCountingRecorder()

	res := newTestUseCase(src, store, WithRecorder(rec)).SyncWorkOrders(context.Background())

	assert.Equal(t, dto.SyncWarning, res.Status)
	assert.Equal(t, dto.SyncCounts{Processed: 2, Failed: 1}, res.Counts)
	st := store.state()
	assert.Len(t, st.workOrders, 2)
	assert.NotContains(t, st.clients, "C2", "el fantasma de la fila fallida se deshace")
	assert.Empty(t, st.catalogs[entity.CatalogServiceType])

	assert.Equal(t, 2, rec.rows["work_orders/processed"])
	assert.Equal(t, 1, rec.rows["work_orders/failed"])
	assert.Equal(t, dto.SyncWarning, rec.runs["work_orders"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Visitas de campo
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncFieldVisits_DosTecnicosYEquipo(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Campo": table([]string{"ID", "Código", "Agencia/Zona", "Técnico 1", "Técnico 2", "Serie", "Última Fecha", "Cliente"},
			[]string{"V1", "K-1", "Norte", "ana ruiz", "LUIS MORA", "B-55", "12/02/2025", "C3"},
			[]string{"V2", "K-2", "Sur", "Ana Ruiz", "", "B-55", "", ""},
		),
	}}

	res := newTestUseCase(src, store).SyncFieldVisits(context.Background())

	require.Equal(t, dto.SyncSuccess, res.Status)
	st := store.state()
	assert.Len(t, st.catalogs[entity.CatalogTechnician], 2)
	assert.Len(t, st.equipment, 1)
	assert.Equal(t, "Cliente C3", st.clients["C3"].LegalName)

	v1 := st.fieldVisits["V1"]
	require.NotNil(t, v1.Technician1ID)
	require.NotNil(t, v1.Technician2ID)
	assert.NotEqual(t, *v1.Technician1ID, *v1.Technician2ID)
	require.NotNil(t, v1.LastVisitDate)
	assert.Equal(t, time.February, v1.LastVisitDate.Month())
	assert.Nil(t, st.fieldVisits["V2"].Technician2ID)
	assert.Equal(t, *v1.EquipmentID, *st.fieldVisits["V2"].EquipmentID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores que abortan la corrida
// ──────────────────────────────────────────────────────────────────────────────

func TestSync_OrigenNoDisponible(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{err: errors.New("403 forbidden")}

	res := newTestUseCase(src, store).SyncClients(context.Background())

	assert.Equal(t, dto.SyncError, res.Status)
	assert.ErrorIs(t, res.Err, domain.ErrSourceUnavailable)
	assert.Zero(t, store.commits)
}

func TestSync_HojaVacia(t *testing.T) {
	res := newTestUseCase(&fakeSource{}, newMemStore()).SyncWorkOrders(context.Background())

	assert.Equal(t, dto.SyncError, res.Status)
	assert.ErrorIs(t, res.Err, domain.ErrEmptySource)
}

func TestSync_SinColumnaID(t *testing.T) {
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table([]string{"Nombre", "Ciudad"}, []string{"Acme", "Quito"}),
	}}

	res := newTestUseCase(src, newMemStore()).SyncClients(context.Background())

	assert.Equal(t, dto.SyncError, res.Status)
	assert.ErrorIs(t, res.Err, domain.ErrMissingKeyColumn)
	assert.Contains(t, res.Message, "Nombre")
}

func TestSync_FalloDeCommitNoConfirmaNada(t *testing.T) {
	store := newMemStore()
	store.commitErr = errors.New("connection reset")
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders, []string{"C1", "Acme"}, []string{"", "Sin id"}),
	}}
	rec := newCountingRecorder()

	res := newTestUseCase(src, store, WithRecorder(rec)).SyncClients(context.Background())

	assert.Equal(t, dto.SyncError, res.Status)
	assert.ErrorIs(t, res.Err, domain.ErrCommitFailed)
	assert.Zero(t, res.Counts)
	assert.Empty(t, store.state().clients)
	assert.Empty(t, rec.rows, "filas revertidas no cuentan en las métricas")
	assert.Equal(t, dto.SyncError, rec.runs["clients"])
}

func TestSync_SoloFilasSinIDEsAdvertencia(t *testing.T) {
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders, []string{"", "Acme"}, []string{" ", "Beta"}),
	}}

	res := newTestUseCase(src, newMemStore()).SyncClients(context.Background())

	assert.Equal(t, dto.SyncWarning, res.Status)
	assert.Equal(t, dto.SyncCounts{Skipped: 2}, res.Counts)
}

func TestSyncAll_OrdenYContinuidad(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{sheets: map[string][]Row{
		"Clientes": table(clientHeaders, []string{"C1", "Acme"}),
		"Ingresos": table(orderHeaders, []string{"O1", "", "C1"}),
	}}

	results := newTestUseCase(src, store).SyncAll(context.Background())

	require.Len(t, results, 3)
	assert.Equal(t, EntityClients, results[0].Entity)
	assert.Equal(t, EntityWorkOrders, results[1].Entity)
	assert.Equal(t, EntityFieldVisits, results[2].Entity)
	assert.Equal(t, dto.SyncSuccess, results[1].Status)
	assert.Equal(t, dto.SyncError, results[2].Status, "la hoja de campo vacía falla sola")
	assert.Equal(t, "Acme", store.state().clients["C1"].LegalName)
}
