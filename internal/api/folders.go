package api

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/calbot/noteful/internal/apperr"
	"github.com/calbot/noteful/internal/noteservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc          *noteservice.Service
	hideInternal bool
}

// NewHandler creates a new Handler. hideInternal selects the production
// error-hiding policy for unexpected failures.
func NewHandler(svc *noteservice.Service, hideInternal bool) *Handler {
	return &Handler{svc: svc, hideInternal: hideInternal}
}

// idParam parses the {id} URL parameter. A non-numeric segment can match no
// row, so callers treat !ok as not-found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// locationFor builds the Location header value for a created resource.
func locationFor(r *http.Request, id int64) string {
	return path.Join(r.URL.Path, strconv.FormatInt(id, 10))
}

// ListFolders handles GET /api/folders.
func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		h.respondInternal(w, "list folders", err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

// CreateFolder handles POST /api/folders.
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	if k := firstMissingField(body, "name"); k != "" {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("Missing '%s' in request body", k)))
		return
	}
	name, ok := stringField(body, "name")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid 'name' in request body"))
		return
	}

	folder, err := h.svc.CreateFolder(r.Context(), name)
	if err != nil {
		h.respondInternal(w, "create folder", err)
		return
	}
	w.Header().Set("Location", locationFor(r, folder.ID))
	writeJSON(w, http.StatusCreated, folder)
}

// GetFolder handles GET /api/folders/{id}.
func (h *Handler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Folder doesn't exist"))
		return
	}
	folder, err := h.svc.GetFolder(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Folder doesn't exist"))
		} else {
			h.respondInternal(w, "get folder", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

// DeleteFolder handles DELETE /api/folders/{id}. Deletion cascades to the
// folder's notes.
func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Folder doesn't exist"))
		return
	}
	if err := h.svc.DeleteFolder(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Folder doesn't exist"))
		} else {
			h.respondInternal(w, "delete folder", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
