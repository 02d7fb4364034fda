package translation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/preset"
)

// Translation is one translation pass over a file. file_preset_json is a
// snapshot of the preset taken at creation time, so later preset edits do
// not rewrite what this pass was configured with.
type Translation struct {
	TranslationID          uuid.UUID          `gorm:"column:translation_id;type:uuid;primaryKey" json:"translation_id"`
	FileID                 uuid.UUID          `gorm:"column:file_id;type:uuid;index" json:"file_id"`
	File                   *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	FilePresetID           uuid.UUID          `gorm:"column:file_preset_id;type:uuid" json:"file_preset_id"`
	Preset                 *preset.FilePreset `gorm:"foreignKey:FilePresetID;references:FilePresetID" json:"-"`
	FilePresetJSON         datatypes.JSON     `gorm:"column:file_preset_json" json:"file_preset_json"`
	AssigneeID             uuid.UUID          `gorm:"column:assignee_id;type:uuid" json:"assignee_id"`
	TranslatedText         datatypes.JSON     `gorm:"column:translated_text" json:"translated_text"`
	TranslatedTextModified datatypes.JSON     `gorm:"column:translated_text_modified" json:"translated_text_modified"`
	CreatedAt              time.Time          `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt              time.Time          `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt              gorm.DeletedAt     `gorm:"column:deleted_at" json:"-"`
}

func (Translation) TableName() string { return "au_file_translation" }

// ListItem is the payload-free projection used by listings; the JSON text
// columns can be large and are only fetched one row at a time.
type ListItem struct {
	TranslationID uuid.UUID `json:"translation_id"`
	FileID        uuid.UUID `json:"file_id"`
	FilePresetID  uuid.UUID `json:"file_preset_id"`
	AssigneeID    uuid.UUID `json:"assignee_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
