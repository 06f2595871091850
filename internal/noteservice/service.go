// Package noteservice coordinates folder and note persistence and owns the
// public representation of a note.
package noteservice

import (
	"context"

	"github.com/calbot/noteful/internal/apperr"
	"github.com/calbot/noteful/internal/sanitize"
	"github.com/calbot/noteful/internal/sse"
	"github.com/calbot/noteful/internal/store"
)

// PublicNote is the only note shape ever sent to a client. Name and content
// are sanitized; the folder reference always appears as "folderId".
type PublicNote struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Modified string `json:"modified"`
	FolderID int64  `json:"folderId"`
	Content  string `json:"content"`
}

func publicNote(n *store.Note) *PublicNote {
	return &PublicNote{
		ID:       n.ID,
		Name:     sanitize.Clean(n.Name),
		Modified: n.Modified,
		FolderID: n.FolderID,
		Content:  sanitize.Clean(n.Content),
	}
}

// Service coordinates store operations and change-event publication.
type Service struct {
	db     store.Store
	broker *sse.Broker
}

// NewService creates a new service. broker may be nil when change events
// are not needed (tests, MCP mode).
func NewService(db store.Store, broker *sse.Broker) *Service {
	return &Service{db: db, broker: broker}
}

func (s *Service) publish(kind string, id int64) {
	if s.broker != nil {
		s.broker.PublishChange(kind, id)
	}
}

// ListFolders returns all folders.
func (s *Service) ListFolders(ctx context.Context) ([]store.Folder, error) {
	return s.db.ListFolders(ctx)
}

// GetFolder returns the folder with the given id, or apperr.ErrNotFound.
func (s *Service) GetFolder(ctx context.Context, id int64) (*store.Folder, error) {
	f, err := s.db.GetFolder(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.ErrNotFound
	}
	return f, nil
}

// CreateFolder persists a new folder and returns it with its assigned id.
func (s *Service) CreateFolder(ctx context.Context, name string) (*store.Folder, error) {
	f, err := s.db.InsertFolder(ctx, name)
	if err != nil {
		return nil, err
	}
	s.publish(sse.FolderCreated, f.ID)
	return f, nil
}

// DeleteFolder removes a folder and, via the schema cascade, its notes.
// Returns apperr.ErrNotFound when no such folder exists.
func (s *Service) DeleteFolder(ctx context.Context, id int64) error {
	f, err := s.db.GetFolder(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return apperr.ErrNotFound
	}
	if _, err := s.db.DeleteFolder(ctx, id); err != nil {
		return err
	}
	s.publish(sse.FolderDeleted, id)
	return nil
}

// ListNotes returns the public representation of all notes.
func (s *Service) ListNotes(ctx context.Context) ([]PublicNote, error) {
	rows, err := s.db.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]PublicNote, len(rows))
	for i := range rows {
		notes[i] = *publicNote(&rows[i])
	}
	return notes, nil
}

// GetNote returns the public representation of one note, or
// apperr.ErrNotFound.
func (s *Service) GetNote(ctx context.Context, id int64) (*PublicNote, error) {
	n, err := s.db.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.ErrNotFound
	}
	return publicNote(n), nil
}

// CreateNote persists a new note. The target folder is checked first so a
// dangling reference answers as apperr.ErrFolderNotFound rather than a bare
// storage failure; the foreign key constraint backstops the check/insert
// race.
func (s *Service) CreateNote(ctx context.Context, name, modified string, folderID int64, content string) (*PublicNote, error) {
	folder, err := s.db.GetFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperr.ErrFolderNotFound
	}

	n, err := s.db.InsertNote(ctx, name, modified, folderID, content)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, apperr.ErrFolderNotFound
		}
		return nil, err
	}
	s.publish(sse.NoteCreated, n.ID)
	return publicNote(n), nil
}

// UpdateNote applies the revisable subset to an existing note. Returns
// apperr.ErrNotFound when no such note exists.
func (s *Service) UpdateNote(ctx context.Context, id int64, upd store.NoteUpdate) error {
	n, err := s.db.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return apperr.ErrNotFound
	}
	if _, err := s.db.UpdateNote(ctx, id, upd); err != nil {
		return err
	}
	s.publish(sse.NoteUpdated, id)
	return nil
}

// DeleteNote removes a note. Returns apperr.ErrNotFound when no such note
// exists.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	n, err := s.db.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return apperr.ErrNotFound
	}
	if _, err := s.db.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.publish(sse.NoteDeleted, id)
	return nil
}
