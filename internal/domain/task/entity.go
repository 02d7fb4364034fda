package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/original"
)

// Task ties a file node to its translation pipeline: the original text row,
// up to two translation passes and a proofreading pass. One task per file,
// created together with its Original in a single transaction.
type Task struct {
	FileID           uuid.UUID          `gorm:"column:file_id;type:uuid;primaryKey" json:"file_id"`
	File             *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	FilePresetID     *uuid.UUID         `gorm:"column:file_preset_id;type:uuid" json:"file_preset_id"`
	OriginalID       uuid.UUID          `gorm:"column:original_id;type:uuid;not null" json:"original_id"`
	Original         *original.Original `gorm:"foreignKey:OriginalID;references:OriginalID;constraint:OnDelete:CASCADE" json:"-"`
	TranslationID1st *uuid.UUID         `gorm:"column:translation_id_1st;type:uuid" json:"translation_id_1st"`
	TranslationID2nd *uuid.UUID         `gorm:"column:translation_id_2nd;type:uuid" json:"translation_id_2nd"`
	ProofreadingID   *uuid.UUID         `gorm:"column:proofreading_id;type:uuid" json:"proofreading_id"`
	CreatedAt        time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (Task) TableName() string { return "au_file_tasks" }

// Details is the task row joined with its original text and the node
// metadata, as served by the details endpoint.
type Details struct {
	FileID               uuid.UUID      `gorm:"column:file_id" json:"file_id"`
	FilePresetID         *uuid.UUID     `gorm:"column:file_preset_id" json:"file_preset_id"`
	OriginalID           uuid.UUID      `gorm:"column:original_id" json:"original_id"`
	OriginalText         datatypes.JSON `gorm:"column:original_text" json:"original_text"`
	OriginalTextModified datatypes.JSON `gorm:"column:original_text_modified" json:"original_text_modified"`
	TranslationID1st     *uuid.UUID     `gorm:"column:translation_id_1st" json:"translation_id_1st"`
	TranslationID2nd     *uuid.UUID     `gorm:"column:translation_id_2nd" json:"translation_id_2nd"`
	ProofreadingID       *uuid.UUID     `gorm:"column:proofreading_id" json:"proofreading_id"`
	FileType             string         `gorm:"column:file_type" json:"file_type"`
	FileName             string         `gorm:"column:file_name" json:"file_name"`
	FileURL              *string        `gorm:"column:file_url" json:"file_url"`
	FileExt              string         `gorm:"column:file_ext" json:"file_ext"`
	FileSize             int64          `gorm:"column:file_size" json:"file_size"`
	MimeType             *string        `gorm:"column:mime_type" json:"mime_type"`
	Description          *string        `gorm:"column:description" json:"description"`
	CreatedAt            time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at" json:"updated_at"`
}
