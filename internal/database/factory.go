package database

import (
	"database/sql"
	"fmt"
)

// NewDatabase creates a database instance based on the requested type
func NewDatabase(dbType, postgresURL string) (Database, error) {
	switch dbType {
	case "sqlite":
		return NewSQLiteDB(), nil
	case "postgres":
		if postgresURL == "" {
			return nil, fmt.Errorf("postgres-url is required for postgres database type")
		}
		return NewPostgresDB(postgresURL), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// InitDatabase creates and initializes a database of the requested type
func InitDatabase(dbType, postgresURL string) (*sql.DB, Database, error) {
	dbImpl, err := NewDatabase(dbType, postgresURL)
	if err != nil {
		return nil, nil, err
	}

	db, err := dbImpl.InitDB()
	if err != nil {
		return nil, nil, err
	}

	return db, dbImpl, nil
}
