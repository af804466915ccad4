package alt_db

import (
	"context"
	"fmt"

	"feedengine/config"
	"feedengine/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBPool opens and pings the connection pool.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.ErrorContext(ctx, "Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "Connected to database",
		"host", cfg.Host,
		"database", cfg.Name,
		"max_conns", cfg.MaxConnections,
	)

	return pool, nil
}
