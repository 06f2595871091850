package apperr

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFolderNotFound = errors.New("folder not found")
)
