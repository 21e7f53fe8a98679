// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/formatacle/formatacle/pkg/types"
)

// SQLiteStore persists conversion results in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		success INTEGER NOT NULL,
		ios_xml TEXT,
		android_xml TEXT,
		error TEXT,
		created_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Put stores the result under a fresh opaque id.
func (s *SQLiteStore) Put(ctx context.Context, result types.ConversionResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, success, ios_xml, android_xml, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, result.Success, result.IOSXML, result.AndroidXML, result.Error,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("storing conversion: %w", err)
	}
	return id, nil
}

// Get looks up a stored result.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*types.ConversionResult, error) {
	var r types.ConversionResult
	err := s.db.QueryRowContext(ctx,
		`SELECT success, ios_xml, android_xml, error FROM conversions WHERE id = ?`, id).
		Scan(&r.Success, &r.IOSXML, &r.AndroidXML, &r.Error)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading conversion %s: %w", id, err)
	}
	return &r, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
