package history

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrHistoryNotFound = errors.New("edit history not found")
)
