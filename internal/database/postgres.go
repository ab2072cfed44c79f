package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"pricing-datagen/internal/generator"
)

// PostgresDB implements the Database interface for PostgreSQL
type PostgresDB struct {
	ConnectionURL string
}

// NewPostgresDB creates a new PostgreSQL database instance
func NewPostgresDB(connectionURL string) *PostgresDB {
	return &PostgresDB{ConnectionURL: connectionURL}
}

// InitDB initializes the PostgreSQL database and creates required tables
func (p *PostgresDB) InitDB() (*sql.DB, error) {
	db, err := sql.Open("postgres", p.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %v", err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS runs (
        id SERIAL PRIMARY KEY,
        run_name TEXT NOT NULL,
        seed BIGINT NOT NULL,
        row_count INTEGER NOT NULL,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS observations (
        id SERIAL PRIMARY KEY,
        run_id INTEGER NOT NULL REFERENCES runs(id),
        price DOUBLE PRECISION NOT NULL,
        quantity DOUBLE PRECISION NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_observations_run_id ON observations(run_id);
    `

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}
	return db, nil
}

// CreateRun inserts a generation run record and returns its ID
func (p *PostgresDB) CreateRun(db *sql.DB, name string, seed int64, rowCount int) (int64, error) {
	var runID int64
	err := db.QueryRow(
		"INSERT INTO runs (run_name, seed, row_count) VALUES ($1, $2, $3) RETURNING id",
		name, seed, rowCount).Scan(&runID)
	return runID, err
}

// StoreObservations stores the generated rows for a run
func (p *PostgresDB) StoreObservations(db *sql.DB, runID int64, rows []generator.Observation) error {
	for _, r := range rows {
		_, err := db.Exec(
			"INSERT INTO observations (run_id, price, quantity) VALUES ($1, $2, $3)",
			runID, r.Price, r.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}
