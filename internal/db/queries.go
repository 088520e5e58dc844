package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

// Insert stores a new item.
func Insert(ctx context.Context, db *sql.DB, it item.Item) error {
	query := `INSERT INTO todo (todo_id, name, completed) VALUES (?, ?, ?)`

	_, err := db.ExecContext(ctx, query, it.ID.Bytes(), it.Name, it.Completed)
	if err != nil {
		wErr := errors.NewWriteFailed(err)
		if isUniqueConstraintError(err) {
			wErr.Details = map[string]any{"constraint": "unique", "id": it.ID.String()}
		}
		return wErr
	}
	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// LoadAll returns every item in insertion order (internal rowid).
// A row that does not decode into an item fails the whole load.
func LoadAll(ctx context.Context, db *sql.DB) ([]item.Item, error) {
	rows, err := db.QueryContext(ctx, `SELECT todo_id, name, completed FROM todo ORDER BY id`)
	if err != nil {
		return nil, errors.NewReadFailed(err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errors.NewReadFailed(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewReadFailed(err)
	}

	return items, nil
}

// Update overwrites name and completed for the row with it.ID.
// No matching row is not an error.
func Update(ctx context.Context, db *sql.DB, it item.Item) error {
	query := `UPDATE todo SET name = ?, completed = ? WHERE todo_id = ?`

	if _, err := db.ExecContext(ctx, query, it.Name, it.Completed, it.ID.Bytes()); err != nil {
		return errors.NewWriteFailed(err)
	}
	return nil
}

// Delete removes the row with it.ID. No matching row is not an error.
func Delete(ctx context.Context, db *sql.DB, it item.Item) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM todo WHERE todo_id = ?`, it.ID.Bytes()); err != nil {
		return errors.NewWriteFailed(err)
	}
	return nil
}

// scanItem scans a single row into an Item.
func scanItem(rows *sql.Rows) (item.Item, error) {
	var (
		it        item.Item
		rawID     []byte
		completed sql.NullBool
	)

	if err := rows.Scan(&rawID, &it.Name, &completed); err != nil {
		return item.Item{}, err
	}

	var id ulid.ULID
	if err := id.UnmarshalBinary(rawID); err != nil {
		return item.Item{}, fmt.Errorf("todo_id %x: %w", rawID, err)
	}
	it.ID = id

	// Rows written by older schemas may carry NULL here
	it.Completed = completed.Valid && completed.Bool

	return it, nil
}

// Insert implements the store contract with a scoped connection.
func (s *Store) Insert(ctx context.Context, it item.Item) error {
	db, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return Insert(ctx, db, it)
}

// LoadAll implements the store contract with a scoped connection.
func (s *Store) LoadAll(ctx context.Context) ([]item.Item, error) {
	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return LoadAll(ctx, db)
}

// Update implements the store contract with a scoped connection.
func (s *Store) Update(ctx context.Context, it item.Item) error {
	db, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return Update(ctx, db, it)
}

// Delete implements the store contract with a scoped connection.
func (s *Store) Delete(ctx context.Context, it item.Item) error {
	db, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return Delete(ctx, db, it)
}
