package proofreading

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aurorah/internal/domain/filenode"
)

// Proofreading is the review pass over a file. participant_ids is a JSON
// array of principal UUIDs; proofreaded_text is the working copy itself,
// there is no separate modified overlay on this stage.
type Proofreading struct {
	ProofreadingID  uuid.UUID          `gorm:"column:proofreading_id;type:uuid;primaryKey" json:"proofreading_id"`
	FileID          uuid.UUID          `gorm:"column:file_id;type:uuid;index" json:"file_id"`
	File            *filenode.FileNode `gorm:"foreignKey:FileID;references:FileID;constraint:OnDelete:CASCADE" json:"-"`
	AssigneeID      *uuid.UUID         `gorm:"column:assignee_id;type:uuid" json:"assignee_id"`
	ParticipantIDs  datatypes.JSON     `gorm:"column:participant_ids" json:"participant_ids"`
	ProofreadedText datatypes.JSON     `gorm:"column:proofreaded_text" json:"proofreaded_text"`
	CreatedAt       time.Time          `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"column:deleted_at" json:"-"`
}

func (Proofreading) TableName() string { return "au_file_proofreading" }

// ListItem is the payload-free projection used by listings.
type ListItem struct {
	ProofreadingID uuid.UUID  `json:"proofreading_id"`
	FileID         uuid.UUID  `json:"file_id"`
	AssigneeID     *uuid.UUID `json:"assignee_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
