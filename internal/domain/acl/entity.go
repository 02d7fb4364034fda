package acl

import (
	"time"

	"github.com/google/uuid"

	"aurorah/internal/domain/filenode"
)

// FileACL grants one principal a role on one file node. Rows are removed
// outright when revoked; there is no soft delete on grants.
type FileACL struct {
	FileID      uuid.UUID          `gorm:"column:file_id;type:uuid;primaryKey" json:"file_id"`
	File        *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	PrincipalID uuid.UUID          `gorm:"column:principal_id;type:uuid;primaryKey" json:"principal_id"`
	Role        string             `gorm:"column:role;size:32;default:viewer" json:"role"`
	CreatedAt   time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (FileACL) TableName() string { return "au_file_acl" }
