// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides per-table data access over PostgreSQL.
// Each store wraps a DBTX so the same methods run against the shared
// connection pool or, via WithTx, inside a caller-owned transaction.
// The service layer opens one transaction per mutating operation so a
// page mutation and its version/notification writes commit atomically.
package store

import "database/sql"

// DBTX is the subset of database operations shared by *sql.DB and *sql.Tx.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// scanner abstracts *sql.Row and *sql.Rows for the scanX helpers.
type scanner interface{ Scan(dest ...any) error }
