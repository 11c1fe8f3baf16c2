package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// sqliteDriver is the database/sql driver name registered by modernc.org/sqlite.
const sqliteDriver = "sqlite"

// SQLiteStore reads and writes the criteria table from a table inside a
// SQLite database file. Rows are returned in rowid order.
type SQLiteStore struct {
	path      string
	tableName string
}

var _ contract.CriteriaStore = &SQLiteStore{} // Compile-time check

// NewSQLiteStore creates a store for tableName inside the database at path.
func NewSQLiteStore(path, tableName string) (*SQLiteStore, error) {
	// Validate table name to prevent SQL injection
	if err := contract.ValidateTableName(tableName); err != nil {
		return nil, err
	}
	return &SQLiteStore{path: path, tableName: tableName}, nil
}

// Load implements the CriteriaSource interface.
func (s *SQLiteStore) Load(ctx context.Context) (schema.CriteriaTable, error) {
	// sql.Open would silently create a missing database file
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT category, criterion FROM %s ORDER BY rowid", s.quotedTable())
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	defer func() { _ = rows.Close() }()

	var table schema.CriteriaTable
	for rows.Next() {
		var category, criterion sql.NullString
		if err := rows.Scan(&category, &criterion); err != nil {
			return nil, fmt.Errorf("failed to scan criteria row: %w", err)
		}
		table = append(table, schema.CriteriaRow{Category: category.String, Criterion: criterion.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read criteria rows: %w", err)
	}

	return validateTable(table)
}

// Save implements the CriteriaStore interface.
func (s *SQLiteStore) Save(ctx context.Context, table schema.CriteriaTable) error {
	if err := ensureParentDir(s.path); err != nil {
		return err
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	quoted := s.quotedTable()
	create := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			category TEXT NOT NULL,
			criterion TEXT NOT NULL
		);
	`, quoted)
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.tableName, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", quoted)); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", s.tableName, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (category, criterion) VALUES (?, ?)", quoted))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range table {
		if _, err := stmt.ExecContext(ctx, row.Category, row.Criterion); err != nil {
			return fmt.Errorf("failed to insert criterion %q: %w", row.Criterion, err)
		}
	}

	return tx.Commit()
}

// Location implements the CriteriaSource interface.
func (s *SQLiteStore) Location() string {
	return fmt.Sprintf("%s (table %s)", s.path, s.tableName)
}

// open opens the database with a single connection to avoid "database is locked" errors.
func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %q: %w", s.path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// quotedTable returns the table name quoted as a SQLite identifier.
func (s *SQLiteStore) quotedTable() string {
	return fmt.Sprintf("\"%s\"", s.tableName)
}
