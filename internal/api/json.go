package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error errMessage `json:"error"`
}

type errMessage struct {
	Message string `json:"message"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: errMessage{Message: msg}}
}

// respondInternal is the single place an unexpected failure turns into a
// client response. In production the underlying message is replaced with
// fixed text so internals never leak.
func (h *Handler) respondInternal(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", slog.String("error", err.Error()))
	msg := err.Error()
	if h.hideInternal {
		msg = "Unauthorized request"
	}
	writeJSON(w, http.StatusInternalServerError, errorBody(msg))
}
