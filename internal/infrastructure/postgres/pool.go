package postgres

import (
	"context"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jhoicas/quickcart-inventory/pkg/config"
)

// NewPool abre el pool de PostgreSQL y verifica la conexión con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := buildPoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// buildPoolConfig traduce DBConfig a la configuración de pgxpool sin conectar.
func buildPoolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	p := cfg.Pool
	poolConfig.MaxConns = p.MaxConns
	poolConfig.MinConns = p.MinConns
	poolConfig.MaxConnLifetime = p.MaxConnLifetime
	poolConfig.MaxConnIdleTime = p.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = p.HealthCheckPeriod

	if dial := dialFunc(p.ForceIPv4); dial != nil {
		poolConfig.ConnConfig.DialFunc = dial
	}

	// NUMERIC -> decimal.Decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

// dialFunc nil deja el dial por defecto de pgx.
func dialFunc(forceIPv4 bool) pgconn.DialFunc {
	if !forceIPv4 {
		return nil
	}
	return dialIPv4
}

// dialIPv4 conecta por tcp4 a la primera dirección IPv4 del host.
func dialIPv4(ctx context.Context, _, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return nil, err
	}
	var d net.Dialer
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", fmt.Errorf("dial IPv4: %s es una dirección IPv6", host)
		}
		return host, nil
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", fmt.Errorf("dial IPv4: resolver %s: %w", host, err)
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("dial IPv4: %s sin dirección IPv4", host)
	}
	return ips[0].String(), nil
}
