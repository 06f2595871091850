package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// decodeBody reads a JSON object body into a raw-field map so required-field
// checks can distinguish "absent" from "present but empty".
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, false
	}
	return body, true
}

// firstMissingField returns the first key, in the declared order, that is
// absent from body or JSON null. An empty string value counts as present.
func firstMissingField(body map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := body[k]
		if !ok || string(v) == "null" {
			return k
		}
	}
	return ""
}

// stringField unmarshals body[key] as a string.
func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	var s string
	if err := json.Unmarshal(body[key], &s); err != nil {
		return "", false
	}
	return s, true
}

// coerceFolderID converts a caller-supplied folder reference, either a JSON
// number or a numeric string, to the integer folder id.
func coerceFolderID(raw json.RawMessage) (int64, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
