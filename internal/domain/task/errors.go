package task

import "errors"

var (
	ErrFileNotFound         = errors.New("file not found")
	ErrTaskExists           = errors.New("task already exists for this file")
	ErrTaskNotFound         = errors.New("file task not found")
	ErrOriginalExists       = errors.New("file original already exists")
	ErrNoFileURL            = errors.New("file has no url")
	ErrFetchFailed          = errors.New("failed to read file from url")
	ErrPresetNotFound       = errors.New("file preset not found")
	ErrTranslationNotFound  = errors.New("translation not found")
	ErrProofreadingNotFound = errors.New("proofreading not found")
)
