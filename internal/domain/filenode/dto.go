package filenode

import "github.com/google/uuid"

type CreateFileNodeRequest struct {
	OwnerID      string     `json:"owner_id" binding:"required,max=255"`
	ParentFileID *uuid.UUID `json:"parent_file_id"`
	FileType     string     `json:"file_type" binding:"omitempty,oneof=folder file"`
	FileName     string     `json:"file_name" binding:"required,max=512"`
	FileURL      *string    `json:"file_url" binding:"omitempty,max=1024"`
	FileExt      string     `json:"file_ext" binding:"omitempty,max=32"`
	FileSize     int64      `json:"file_size" binding:"omitempty,gte=0"`
	MimeType     *string    `json:"mime_type" binding:"omitempty,max=32"`
	Description  *string    `json:"description" binding:"omitempty,max=512"`
}

// UpdateFileNodeRequest carries partial changes; nil fields stay unchanged.
type UpdateFileNodeRequest struct {
	FileName    *string `json:"file_name" binding:"omitempty,min=1,max=512"`
	FileURL     *string `json:"file_url" binding:"omitempty,max=1024"`
	FileSize    *int64  `json:"file_size" binding:"omitempty,gte=0"`
	MimeType    *string `json:"mime_type" binding:"omitempty,max=32"`
	Description *string `json:"description" binding:"omitempty,max=512"`
}

type MoveFileNodeRequest struct {
	NewParentFileID *uuid.UUID `json:"new_parent_file_id"`
}

// ListFileNodesQuery is assembled from query parameters, then checked with
// the validator package.
type ListFileNodesQuery struct {
	OwnerID      string     `form:"owner_id" validate:"required,max=255"`
	Option       string     `form:"option" validate:"omitempty,oneof=all-files shared-files trash-files nodes"`
	ParentFileID *uuid.UUID `form:"parent_file_id" validate:"-"`
}
