package db

import (
	"context"
	"fmt"
)

// schemaStatements creates the five record tables. Every statement is
// idempotent so the schema can be re-applied against an existing file on
// every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id TEXT UNIQUE,
		name TEXT,
		age INTEGER,
		gender TEXT,
		phone TEXT,
		address TEXT,
		reg_date TEXT DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		doctor_id TEXT UNIQUE,
		name TEXT,
		specialization TEXT,
		fee REAL,
		phone TEXT,
		available INTEGER DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		appointment_id TEXT UNIQUE,
		patient_id TEXT,
		doctor_id TEXT,
		date TEXT,
		time TEXT,
		status TEXT DEFAULT 'Scheduled'
	)`,
	`CREATE TABLE IF NOT EXISTS medicines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		quantity INTEGER,
		price REAL,
		expiry TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bill_no TEXT UNIQUE,
		patient_id TEXT,
		amount REAL,
		paid REAL,
		status TEXT DEFAULT 'Pending'
	)`,
}

// EnsureSchema applies the record-store schema, creating any missing tables.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
