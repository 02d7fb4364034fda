package filenode

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeFolder = "folder"
	TypeFile   = "file"
)

// FileNode is one row of the file tree. Files and folders share the table;
// parent_file_id is nil at root level. Soft delete keeps the row in place so
// trash listing and restore work without touching children.
type FileNode struct {
	FileID       uuid.UUID      `gorm:"column:file_id;type:uuid;primaryKey" json:"file_id"`
	OwnerID      string         `gorm:"column:owner_id;size:255;index;uniqueIndex:udx_file_nodes_sibling" json:"owner_id"`
	ParentFileID *uuid.UUID     `gorm:"column:parent_file_id;type:uuid;uniqueIndex:udx_file_nodes_sibling" json:"parent_file_id"`
	FileType     string         `gorm:"column:file_type;size:32;default:folder" json:"file_type"`
	FileName     string         `gorm:"column:file_name;size:512;uniqueIndex:udx_file_nodes_sibling,where:deleted_at IS NULL" json:"file_name"`
	FileURL      *string        `gorm:"column:file_url;size:1024" json:"file_url"`
	FileExt      string         `gorm:"column:file_ext;size:32;default:''" json:"file_ext"`
	FileSize     int64          `gorm:"column:file_size;default:0" json:"file_size"`
	MimeType     *string        `gorm:"column:mime_type;size:32" json:"mime_type"`
	Description  *string        `gorm:"column:description;size:512" json:"description"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FileNode) TableName() string { return "au_file_nodes" }

func (n *FileNode) IsFolder() bool { return n.FileType == TypeFolder }
