// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickpost API server.

quickpost is a small social posting backend: users register, log in for a
bearer token, publish posts and up-vote each other's posts. Listings carry
the live vote count of every post.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first if present:

	DATABASE_URL=postgres://... JWT_SECRET=... go run .

Or with flags:

	go run . serve -p 8000 -d "postgres://..." -jwt-secret dev

Create the schema without serving:

	go run . migrate -d "postgres://..." -jwt-secret dev

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - JWT_SECRET (-jwt-secret): HMAC secret for access tokens

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): postgres (lib/pq), pgx or sqlite (default: postgres)
  - ACCESS_TOKEN_EXPIRE_MINUTES (-token-ttl): Token lifetime (default: 30m)
  - DB_CONNECT_TIMEOUT (-connect-timeout): Startup retry budget (default: forever)
  - CORS_ORIGIN (-cors-origin): Allowed origin (default: *)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): slog settings

# Architecture

  - handlers: HTTP request handlers (users, login, posts, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer auth, JSON helpers
  - store: SQL queries and transactions
  - models: Request/response and domain types
  - auth: JWT issue/verify and bcrypt password hashing
  - db: Connection, dialects and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
