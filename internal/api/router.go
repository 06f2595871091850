package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/calbot/noteful/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// hideInternal selects the production error-hiding policy.
func NewRouter(svc *noteservice.Service, hideInternal bool) chi.Router {
	h := NewHandler(svc, hideInternal)

	r := chi.NewRouter()

	// Folders CRUD (no update operation is exposed for folders).
	r.Get("/folders", h.ListFolders)
	r.Post("/folders", h.CreateFolder)
	r.Get("/folders/{id}", h.GetFolder)
	r.Delete("/folders/{id}", h.DeleteFolder)

	// Notes CRUD.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Patch("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	return r
}
