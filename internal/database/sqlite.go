package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"pricing-datagen/internal/generator"
)

// SQLiteDBFilePath is the default location of the SQLite database file
const SQLiteDBFilePath = "./data/pricing_runs.db"

// SQLiteDB implements the Database interface for SQLite
type SQLiteDB struct {
	Path string
}

// NewSQLiteDB creates a new SQLite database instance at the default path
func NewSQLiteDB() *SQLiteDB {
	return &SQLiteDB{Path: SQLiteDBFilePath}
}

// InitDB initializes the SQLite database and creates required tables
func (s *SQLiteDB) InitDB() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}

	schema := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_name TEXT NOT NULL,
        seed INTEGER NOT NULL,
        row_count INTEGER NOT NULL,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS observations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id INTEGER NOT NULL REFERENCES runs(id),
        price REAL NOT NULL,
        quantity REAL NOT NULL
    );
    `

	_, err = db.Exec(schema)
	return db, err
}

// CreateRun inserts a generation run record and returns its ID
func (s *SQLiteDB) CreateRun(db *sql.DB, name string, seed int64, rowCount int) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO runs (run_name, seed, row_count) VALUES (?, ?, ?)",
		name, seed, rowCount)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// StoreObservations stores the generated rows for a run
func (s *SQLiteDB) StoreObservations(db *sql.DB, runID int64, rows []generator.Observation) error {
	for _, r := range rows {
		_, err := db.Exec(
			"INSERT INTO observations (run_id, price, quantity) VALUES (?, ?, ?)",
			runID, r.Price, r.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}
