// Package store provides SQLite-backed persistence for folders and notes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// AUTOINCREMENT keeps SQLite from reusing ids after a row is deleted.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS folders (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL,
	modified  TEXT NOT NULL,
	folder_id INTEGER NOT NULL REFERENCES folders(id) ON DELETE CASCADE,
	content   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_folder_id ON notes(folder_id);
`

// Folder is a named grouping container that owns zero or more notes.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note is a persisted note row. The modified timestamp is caller-supplied
// and stored verbatim. Note carries no JSON tags on purpose: raw rows are
// never serialized to clients directly.
type Note struct {
	ID       int64
	Name     string
	Modified string
	FolderID int64
	Content  string
}

// NoteUpdate names the revisable subset of a note. Nil fields are left
// untouched; folder_id is not revisable.
type NoteUpdate struct {
	Name     *string
	Content  *string
	Modified *string
}

// Store defines the persistence operations for folders and notes.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type Store interface {
	ListFolders(ctx context.Context) ([]Folder, error)
	GetFolder(ctx context.Context, id int64) (*Folder, error)
	InsertFolder(ctx context.Context, name string) (*Folder, error)
	DeleteFolder(ctx context.Context, id int64) (int64, error)

	ListNotes(ctx context.Context) ([]Note, error)
	GetNote(ctx context.Context, id int64) (*Note, error)
	InsertNote(ctx context.Context, name, modified string, folderID int64, content string) (*Note, error)
	UpdateNote(ctx context.Context, id int64, upd NoteUpdate) (int64, error)
	DeleteNote(ctx context.Context, id int64) (int64, error)

	Close() error
}

// Verify *DB satisfies Store at compile time.
var _ Store = (*DB)(nil)

// DB wraps a sql.DB with folder and note operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
// Foreign keys are enabled on every connection; folder deletion cascades
// to the folder's notes.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// IsForeignKeyViolation reports whether err is a SQLite foreign key
// constraint failure, i.e. a write referencing a nonexistent parent row.
func IsForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
