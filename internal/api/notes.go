package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calbot/noteful/internal/apperr"
	"github.com/calbot/noteful/internal/store"
)

// Required write fields for a note, in the order missing-field errors report
// them. Do not reorder.
var noteRequiredFields = []string{"name", "modified", "folderId", "content"}

// ListNotes handles GET /api/notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		h.respondInternal(w, "list notes", err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	if k := firstMissingField(body, noteRequiredFields...); k != "" {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("Missing '%s' in request body", k)))
		return
	}

	fields := map[string]string{}
	for _, k := range []string{"name", "modified", "content"} {
		v, ok := stringField(body, k)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("Invalid '%s' in request body", k)))
			return
		}
		fields[k] = v
	}
	folderID, ok := coerceFolderID(body["folderId"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid 'folderId' in request body"))
		return
	}

	note, err := h.svc.CreateNote(r.Context(), fields["name"], fields["modified"], folderID, fields["content"])
	if err != nil {
		if errors.Is(err, apperr.ErrFolderNotFound) {
			writeJSON(w, http.StatusBadRequest, errorBody("Folder doesn't exist"))
		} else {
			h.respondInternal(w, "create note", err)
		}
		return
	}
	w.Header().Set("Location", locationFor(r, note.ID))
	writeJSON(w, http.StatusCreated, note)
}

// GetNote handles GET /api/notes/{id}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		return
	}
	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		} else {
			h.respondInternal(w, "get note", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// UpdateNote handles PATCH /api/notes/{id}. Only name, content and modified
// are revisable; the folder reference is fixed at creation.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		return
	}
	// Existence answers before body validation, matching the route's
	// precheck-then-handle shape.
	if _, err := h.svc.GetNote(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		} else {
			h.respondInternal(w, "update note", err)
		}
		return
	}

	body, ok := decodeBody(w, r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}

	var upd store.NoteUpdate
	for _, k := range []string{"name", "content", "modified"} {
		if raw, present := body[k]; !present || string(raw) == "null" {
			continue
		}
		v, ok := stringField(body, k)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("Invalid '%s' in request body", k)))
			return
		}
		switch k {
		case "name":
			upd.Name = &v
		case "content":
			upd.Content = &v
		case "modified":
			upd.Modified = &v
		}
	}
	if upd.Name == nil && upd.Content == nil && upd.Modified == nil {
		writeJSON(w, http.StatusBadRequest,
			errorBody("Request body must contain either 'name', 'content' or 'modified'"))
		return
	}

	if err := h.svc.UpdateNote(r.Context(), id, upd); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		} else {
			h.respondInternal(w, "update note", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note doesn't exist"))
		} else {
			h.respondInternal(w, "delete note", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
