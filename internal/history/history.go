// Package history persists REPL input across sessions in a SQLite
// database via database/sql and the modernc.org/sqlite driver.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a handle onto the history database.
type Store struct {
	db *sql.DB
}

// Open creates or reuses the SQLite file at path and ensures its schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	line TEXT NOT NULL,
	entered_at TIMESTAMP NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Append records one line of REPL input.
func (s *Store) Append(line string) error {
	_, err := s.db.Exec(`INSERT INTO history (line, entered_at) VALUES (?, ?)`, line, time.Now())
	if err != nil {
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}

// Recent returns up to limit of the most recently entered lines, oldest
// first.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT line FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		lines = append(lines, line)
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, rows.Err()
}
