package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "Quick Cart Grocery Store", cfg.Report.StoreName)
	assert.Equal(t, "Rs. ", cfg.Report.CurrencyPrefix)
	assert.Equal(t, "postgres://postgres:@localhost:5432/quickcart?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("REPORT_CURRENCY_PREFIX", "$ ")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "$ ", cfg.Report.CurrencyPrefix)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "abc")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5432/d?sslmode=require", c.DSN())
}

func TestFromViper_PoolPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, PoolConfig{
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		ForceIPv4:         false,
	}, cfg.DB.Pool)
}

func TestFromViper_PoolDesdeEntorno(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "40")
	v.Set("DB_MIN_CONNS", "4")
	v.Set("DB_MAX_CONN_LIFETIME", "15m")
	v.Set("DB_MAX_CONN_IDLE_TIME", "90s")
	v.Set("DB_HEALTH_CHECK_PERIOD", "10s")
	v.Set("DB_FORCE_IPV4", "true")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	p := cfg.DB.Pool
	assert.Equal(t, int32(40), p.MaxConns)
	assert.Equal(t, int32(4), p.MinConns)
	assert.Equal(t, 15*time.Minute, p.MaxConnLifetime)
	assert.Equal(t, 90*time.Second, p.MaxConnIdleTime)
	assert.Equal(t, 10*time.Second, p.HealthCheckPeriod)
	assert.True(t, p.ForceIPv4)
}

func TestFromViper_PoolInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "2")
	v.Set("DB_MIN_CONNS", "5")

	_, err := fromViper(v)
	assert.Error(t, err)
}
