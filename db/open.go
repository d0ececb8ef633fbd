// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickpost/cliparse"
)

const pingTimeout = 5 * time.Second

// Open connects to the configured database and blocks until it answers a ping.
// Failed pings are retried with exponential backoff until cfg.ConnectTimeout
// elapses (forever when zero) or ctx is cancelled.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, Dialect, error) {
	dialect := DialectFor(cfg.DatabaseType)

	dsn := cfg.DatabaseURL
	if dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(DriverName(cfg.DatabaseType), dsn)
	if err != nil {
		return nil, dialect, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(30 * time.Minute)
	if dialect == SQLite {
		// One writer at a time; avoids SQLITE_BUSY under concurrent requests
		conn.SetMaxOpenConns(1)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.ConnectTimeout

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return conn.PingContext(pingCtx)
	}
	notify := func(err error, next time.Duration) {
		slog.Warn("database connection failed, retrying",
			"error", err,
			"driver", DriverName(cfg.DatabaseType),
			"retry_in", next.Round(time.Millisecond),
		)
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		conn.Close()
		return nil, dialect, fmt.Errorf("database unreachable: %w", err)
	}

	slog.Info("database connection was successful", "driver", DriverName(cfg.DatabaseType))
	return conn, dialect, nil
}

// sqliteDSN enables foreign key enforcement, which SQLite leaves off by default
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
