package filenode

import "errors"

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrParentNotFound = errors.New("parent folder not found")
	ErrNameExists     = errors.New("folder/file name already exists")
	ErrFolderNotEmpty = errors.New("folder is not empty")
	ErrMoveIntoSelf   = errors.New("cannot move a node into itself")
	ErrValidation     = errors.New("validation error")
)
