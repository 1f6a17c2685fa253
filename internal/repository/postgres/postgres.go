package postgres

import (
	"database/sql"

	"ubertool-rental-billing/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		ToolRepository: NewToolRepository(db),
	}
}

// Open connects to PostgreSQL and verifies the connection.
func Open(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
