package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ListFolders returns all folders ordered by id. An empty store yields an
// empty slice, not nil.
func (db *DB) ListFolders(ctx context.Context) ([]Folder, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM folders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list folders: %w", err)
	}
	defer rows.Close()

	folders := []Folder{}
	for rows.Next() {
		var f Folder
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("store: scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// GetFolder returns the folder with the given id, or nil when no row
// matches. Absence is not an error.
func (db *DB) GetFolder(ctx context.Context, id int64) (*Folder, error) {
	var f Folder
	err := db.conn.QueryRowContext(ctx, `SELECT id, name FROM folders WHERE id = ?`, id).
		Scan(&f.ID, &f.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get folder: %w", err)
	}
	return &f, nil
}

// InsertFolder persists a new folder and returns it with the assigned id.
func (db *DB) InsertFolder(ctx context.Context, name string) (*Folder, error) {
	res, err := db.conn.ExecContext(ctx, `INSERT INTO folders (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("store: insert folder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: folder id: %w", err)
	}
	return &Folder{ID: id, Name: name}, nil
}

// DeleteFolder removes the folder with the given id and returns the number
// of rows removed. Deleting a nonexistent id returns 0, not an error.
// Notes owned by the folder are removed by the schema's cascade.
func (db *DB) DeleteFolder(ctx context.Context, id int64) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("store: delete folder: %w", err)
	}
	return res.RowsAffected()
}
