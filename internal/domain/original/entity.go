package original

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/domain/filenode"
)

// Original holds the source text of a file as marker-segmented JSON.
// original_text is the pristine import; original_text_modified is the
// working overlay edits are applied to. At most one row exists per file,
// and rows are never deleted.
type Original struct {
	OriginalID           uuid.UUID          `gorm:"column:original_id;type:uuid;primaryKey" json:"original_id"`
	FileID               uuid.UUID          `gorm:"column:file_id;type:uuid;index" json:"file_id"`
	File                 *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	OriginalText         datatypes.JSON     `gorm:"column:original_text" json:"original_text"`
	OriginalTextModified datatypes.JSON     `gorm:"column:original_text_modified" json:"original_text_modified"`
	CreatedAt            time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (Original) TableName() string { return "au_file_original" }
