package acl

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrACLExists    = errors.New("file acl already exists")
	ErrACLNotFound  = errors.New("file acl not found")
)
