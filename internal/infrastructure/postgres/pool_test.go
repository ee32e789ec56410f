package postgres

import (
	"testing"

	"github.com/jhoicas/productividad-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPoolConfig_Tamaño(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://u:p@127.0.0.1:5432/db?sslmode=disable", MaxConns: 6, MinConns: 9}

	pc, err := buildPoolConfig(cfg, "productividad-api")
	require.NoError(t, err)
	assert.EqualValues(t, 6, pc.MaxConns)
	assert.EqualValues(t, 6, pc.MinConns, "el mínimo no supera al máximo")
	assert.Equal(t, "productividad-api", pc.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "127.0.0.1", pc.ConnConfig.Host)
}

func TestBuildPoolConfig_SinTamañoUsaMinimoUtil(t *testing.T) {
	pc, err := buildPoolConfig(config.DBConfig{Host: "10.0.0.5", Port: 5433, User: "u", DBName: "db", SSLMode: "disable"}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, pc.MaxConns, "API y una corrida deben poder convivir")
	assert.EqualValues(t, 0, pc.MinConns)
	assert.EqualValues(t, 5433, pc.ConnConfig.Port)
	_, ok := pc.ConnConfig.RuntimeParams["application_name"]
	assert.False(t, ok)
}

func TestIPv4DSN_ConservaURLConHostIPv6(t *testing.T) {
	url := "postgres://u:p@[::1]:5432/db"
	assert.Equal(t, url, ipv4DSN(config.DBConfig{DatabaseURL: url}))
}

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4("192.168.1.10")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.10", ip)

	_, err = resolveIPv4("::1")
	assert.Error(t, err)
}
