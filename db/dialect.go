// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/quickpost/cliparse"
)

// Dialect identifies the SQL flavour spoken by the connected database.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// DialectFor maps a configured database type to its SQL dialect.
// Both postgres drivers speak the same dialect.
func DialectFor(databaseType string) Dialect {
	if databaseType == cliparse.DatabaseSQLite {
		return SQLite
	}
	return Postgres
}

// DriverName returns the database/sql driver registered for a database type
func DriverName(databaseType string) string {
	switch databaseType {
	case cliparse.DatabasePGX:
		return "pgx"
	case cliparse.DatabaseSQLite:
		return "sqlite"
	default:
		return "postgres"
	}
}

// Rebind converts ? placeholders to the dialect's bind syntax.
// Queries are written with ? and rewritten to $1..$n for postgres.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Contains returns a case-sensitive literal substring predicate.
// LIKE is avoided: it treats % and _ as wildcards and SQLite's LIKE ignores case.
func (d Dialect) Contains(column string) string {
	if d == SQLite {
		return "instr(" + column + ", ?) > 0"
	}
	return "strpos(" + column + ", ?) > 0"
}

// ForUpdate returns the row lock clause for SELECTs inside a write transaction.
// SQLite serializes writers already and has no row locks.
func (d Dialect) ForUpdate() string {
	if d == SQLite {
		return ""
	}
	return " FOR UPDATE"
}
