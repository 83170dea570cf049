package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// Store persists imported catalogs in a local SQLite database so match
// runs do not re-parse the source spreadsheet. Only the catalog itself is
// stored; user queries and sessions never touch disk.
type Store struct {
	*sql.DB
}

// Open opens or creates the catalog store at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s := &Store{sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	var tableCount int
	err := s.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='programs'
	`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.Exec(initialMigration); err != nil {
			return fmt.Errorf("failed to run initial migration: %w", err)
		}
	}

	return nil
}

// Replace swaps the stored catalog for the given entries in one
// transaction, assigning IDs and preserving catalog order.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM programs`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO programs (id, name, universities, grade_levels, subjects, description, restriction, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range entries {
		e := &entries[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		_, err := stmt.ExecContext(ctx,
			e.ID, e.Name, e.Universities,
			strings.Join(e.GradeLevels, ","),
			strings.Join(e.Subjects, ","),
			e.Description, e.Restriction, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert program %q: %w", e.Name, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns the stored catalog in original catalog order.
func (s *Store) LoadAll(ctx context.Context) ([]Entry, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, name, universities, grade_levels, subjects, description, restriction
		FROM programs ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var grades, subjects string
		if err := rows.Scan(&e.ID, &e.Name, &e.Universities, &grades, &subjects, &e.Description, &e.Restriction); err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		e.GradeLevels = strings.Split(grades, ",")
		e.Subjects = strings.Split(subjects, ",")
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Get returns a single entry by ID or exact name (case-insensitive).
func (s *Store) Get(ctx context.Context, identifier string) (*Entry, error) {
	row := s.QueryRowContext(ctx, `
		SELECT id, name, universities, grade_levels, subjects, description, restriction
		FROM programs WHERE id = ? OR LOWER(name) = LOWER(?) LIMIT 1
	`, identifier, identifier)

	var e Entry
	var grades, subjects string
	err := row.Scan(&e.ID, &e.Name, &e.Universities, &grades, &subjects, &e.Description, &e.Restriction)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("program not found: %s", identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	e.GradeLevels = strings.Split(grades, ",")
	e.Subjects = strings.Split(subjects, ",")
	return &e, nil
}

// Count returns the number of stored programs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRow(`SELECT COUNT(*) FROM programs`).Scan(&n)
	return n, err
}

// Stats holds aggregate catalog statistics.
type Stats struct {
	TotalPrograms int            `json:"total_programs"`
	ByGrade       map[string]int `json:"by_grade"`
	BySubject     map[string]int `json:"by_subject"`
	Restricted    int            `json:"restricted"`
}

// GetStats computes per-grade and per-subject tallies over the stored
// catalog.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	entries, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalPrograms: len(entries),
		ByGrade:       make(map[string]int),
		BySubject:     make(map[string]int),
	}
	for i := range entries {
		for _, g := range entries[i].GradeLevels {
			stats.ByGrade[g]++
		}
		for _, sub := range entries[i].Subjects {
			stats.BySubject[sub]++
		}
		if entries[i].Restriction != "" {
			stats.Restricted++
		}
	}

	return stats, nil
}
