// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: postgres (lib/pq), pgx (jackc/pgx) or sqlite (default: postgres)
  - JWTSecret: Secret used to sign access tokens (required)
  - TokenTTL: Access token lifetime (default: 30m)
  - CORSOrigin: Allowed origin (default: *)
  - ConnectTimeout: Startup connection retry budget (default: 0, retry forever)
  - LogLevel, LogFormat: slog handler settings

# Environment Variables

Flags fall back to environment variables:

	PORT                        → -p
	DATABASE_URL                → -d
	DATABASE_TYPE               → -t
	JWT_SECRET                  → -jwt-secret
	ACCESS_TOKEN_EXPIRE_MINUTES → -token-ttl
	CORS_ORIGIN                 → -cors-origin
	DB_CONNECT_TIMEOUT          → -connect-timeout
	LOG_LEVEL                   → -log-level
	LOG_FORMAT                  → -log-format

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded by main before parsing.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - DATABASE_TYPE must be one of postgres, pgx, sqlite
*/
package cliparse
