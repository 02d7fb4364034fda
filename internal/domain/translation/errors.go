package translation

import "errors"

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrPresetNotFound      = errors.New("file preset not found")
	ErrTranslationNotFound = errors.New("file translation not found")
)
