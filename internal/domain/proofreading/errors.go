package proofreading

import "errors"

var (
	ErrFileNotFound         = errors.New("file not found")
	ErrProofreadingNotFound = errors.New("file proofreading not found")
)
