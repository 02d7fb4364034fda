package preset

import "errors"

var (
	ErrPresetNotFound = errors.New("file preset not found")
	ErrPresetExists   = errors.New("file preset already exists")
)
