package api

import (
	"github.com/calbot/noteful/internal/noteservice"
	"github.com/calbot/noteful/internal/store"
)

// Note is the public note payload (aliased from the domain layer).
type Note = noteservice.PublicNote

// Folder is the folder payload (aliased from the storage layer; folders
// carry no free-text markup and pass through unmodified).
type Folder = store.Folder
