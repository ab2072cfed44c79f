package database

import (
	"database/sql"

	"pricing-datagen/internal/generator"
)

// Database defines the interface that all database implementations must satisfy
type Database interface {
	// InitDB initializes the database and creates required tables
	InitDB() (*sql.DB, error)

	// CreateRun inserts a generation run record and returns its ID
	CreateRun(db *sql.DB, name string, seed int64, rowCount int) (int64, error)

	// StoreObservations stores the generated rows for a run
	StoreObservations(db *sql.DB, runID int64, rows []generator.Observation) error
}
