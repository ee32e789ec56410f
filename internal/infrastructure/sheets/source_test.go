package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/domain"
)

func TestRowsFromValues(t *testing.T) {
	values := [][]any{
		{"ID", "Nombre", "Ciudad"},
		{"C1", "Acme", "Quito", "extra"},
		{"C2"},
		{float64(3), "Beta", nil},
	}

	rows := rowsFromValues(values)

	require.Len(t, rows, 3)
	assert.Equal(t, ingestion.Row{{Header: "ID", Value: "C1"}, {Header: "Nombre", Value: "Acme"}, {Header: "Ciudad", Value: "Quito"}}, rows[0])
	assert.Equal(t, ingestion.Row{{Header: "ID", Value: "C2"}, {Header: "Nombre"}, {Header: "Ciudad"}}, rows[1])
	assert.Equal(t, "3", rows[2][0].Value)
	assert.Equal(t, "", rows[2][2].Value)
}

func TestRowsFromValues_SoloEncabezado(t *testing.T) {
	assert.Empty(t, rowsFromValues([][]any{{"ID"}}))
	assert.Nil(t, rowsFromValues(nil))
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "'Clientes'", quoteSheet("Clientes"))
	assert.Equal(t, "'Hoja de Juan''s'", quoteSheet("Hoja de Juan's"))
}

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc, err := gsheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return NewSourceWithService(svc, "libro-123")
}

func TestFetchRows(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v4/spreadsheets/libro-123/values/")
		assert.Equal(t, "FORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"range":  "'Ingresos'!A1:C3",
			"values": [][]string{{"ID", "Estado"}, {"O1", "Entregado"}},
		})
	})

	rows, err := src.FetchRows(context.Background(), "Ingresos")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Entregado", rows[0][1].Value)
}

func TestFetchRows_ErrorDeAPI(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
	})

	_, err := src.FetchRows(context.Background(), "Clientes")

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable(assert.AnError).FetchRows(context.Background(), "Campo")

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "Campo")
}
