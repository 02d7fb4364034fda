package original

import "errors"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrOriginalNotFound = errors.New("file original not found")
	ErrOriginalExists   = errors.New("file original already exists")
)
