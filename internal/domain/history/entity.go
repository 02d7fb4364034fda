package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/domain/filenode"
)

const (
	TargetOriginal     = "original"
	TargetTranslation  = "translation"
	TargetProofreading = "proofreading"
)

// EditHistory is one entry of the append-only change log. Rows are never
// updated or deleted; document state is reconstructed by replaying entries
// forward from the nearest checkpoint.
type EditHistory struct {
	HistoryID    uuid.UUID          `gorm:"column:history_id;type:uuid;primaryKey" json:"history_id"`
	FileID       uuid.UUID          `gorm:"column:file_id;type:uuid;index" json:"file_id"`
	File         *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	TargetType   string             `gorm:"column:target_type;size:32" json:"target_type"`
	TargetID     uuid.UUID          `gorm:"column:target_id;type:uuid" json:"target_id"`
	MarkerNumber int                `gorm:"column:marker_number" json:"marker_number"`
	EditorID     uuid.UUID          `gorm:"column:editor_id;type:uuid" json:"editor_id"`
	TextBefore   *string            `gorm:"column:text_before;type:text" json:"text_before"`
	TextAfter    string             `gorm:"column:text_after;type:text" json:"text_after"`
	Comments     *string            `gorm:"column:comments;size:512" json:"comments"`
	CreatedAt    time.Time          `gorm:"column:created_at;index" json:"created_at"`
}

func (EditHistory) TableName() string { return "au_file_edit_history" }

// Checkpoint is a full snapshot of the file's three content overlays, keyed
// to the history entry that triggered it. Replay cost stays bounded because
// at most one checkpoint interval of edits sits between any state and the
// nearest snapshot.
type Checkpoint struct {
	CheckpointID           uuid.UUID          `gorm:"column:checkpoint_id;type:uuid;primaryKey" json:"checkpoint_id"`
	FileID                 uuid.UUID          `gorm:"column:file_id;type:uuid;index" json:"file_id"`
	File                   *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	HistoryID              uuid.UUID          `gorm:"column:history_id;type:uuid" json:"history_id"`
	History                *EditHistory       `gorm:"foreignKey:HistoryID;references:HistoryID;constraint:OnDelete:CASCADE" json:"-"`
	OriginalTextModified   datatypes.JSON     `gorm:"column:original_text_modified" json:"original_text_modified"`
	TranslatedTextModified datatypes.JSON     `gorm:"column:translated_text_modified" json:"translated_text_modified"`
	ProofreadedText        datatypes.JSON     `gorm:"column:proofreaded_text" json:"proofreaded_text"`
	CreatedAt              time.Time          `gorm:"column:created_at;index" json:"created_at"`
}

func (Checkpoint) TableName() string { return "au_file_checkpoint" }
