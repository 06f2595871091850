package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ListNotes returns all notes ordered by id. An empty store yields an empty
// slice, not nil.
func (db *DB) ListNotes(ctx context.Context) ([]Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, modified, folder_id, content FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Name, &n.Modified, &n.FolderID, &n.Content); err != nil {
			return nil, fmt.Errorf("store: scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote returns the note with the given id, or nil when no row matches.
// Absence is not an error.
func (db *DB) GetNote(ctx context.Context, id int64) (*Note, error) {
	var n Note
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, modified, folder_id, content FROM notes WHERE id = ?`, id).
		Scan(&n.ID, &n.Name, &n.Modified, &n.FolderID, &n.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return &n, nil
}

// InsertNote persists a new note and returns it with the assigned id.
// A folderID that references no folder fails the foreign key constraint;
// callers can distinguish that case with IsForeignKeyViolation.
func (db *DB) InsertNote(ctx context.Context, name, modified string, folderID int64, content string) (*Note, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO notes (name, modified, folder_id, content) VALUES (?, ?, ?, ?)`,
		name, modified, folderID, content)
	if err != nil {
		return nil, fmt.Errorf("store: insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: note id: %w", err)
	}
	return &Note{ID: id, Name: name, Modified: modified, FolderID: folderID, Content: content}, nil
}

// UpdateNote applies the non-nil fields of upd to the note with the given
// id and returns the number of rows affected. 0 means no such note.
func (db *DB) UpdateNote(ctx context.Context, id int64, upd NoteUpdate) (int64, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *upd.Content)
	}
	if upd.Modified != nil {
		sets = append(sets, "modified = ?")
		args = append(args, *upd.Modified)
	}
	if len(sets) == 0 {
		return 0, fmt.Errorf("store: update note: no revisable fields given")
	}
	args = append(args, id)

	res, err := db.conn.ExecContext(ctx,
		`UPDATE notes SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return 0, fmt.Errorf("store: update note: %w", err)
	}
	return res.RowsAffected()
}

// DeleteNote removes the note with the given id and returns the number of
// rows removed. Deleting a nonexistent id returns 0, not an error.
func (db *DB) DeleteNote(ctx context.Context, id int64) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("store: delete note: %w", err)
	}
	return res.RowsAffected()
}
