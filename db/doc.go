// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, dialects and schema creation.

# Connecting

Open selects the driver from the configured database type and waits for the
database with exponential backoff:

	conn, dialect, err := db.Open(ctx, cfg)

Supported types:

  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite (foreign keys switched on)

# Dialects

Queries are written with ? placeholders and rebound per dialect:

	query := dialect.Rebind("SELECT id FROM posts WHERE id = ?")

Dialect also provides the substring predicate (strpos / instr) and the
row lock clause used inside write transactions.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: Registered accounts (unique email, bcrypt hash)
  - posts: Text posts owned by a user
  - votes: One row per (user, post)

# Relationships

	users 1──* posts
	users *──* posts (via votes)

All foreign keys use ON DELETE CASCADE: deleting a post removes its votes.
*/
package db
