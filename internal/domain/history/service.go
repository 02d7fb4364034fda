package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/pkg/clock"
)

// FileNodeRepository is the slice of the filenode repository this package
// needs. Satisfied by filenode.Repository.
type FileNodeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type RecordEditRequest struct {
	FileID       uuid.UUID `json:"file_id" binding:"required"`
	TargetType   string    `json:"target_type" binding:"required,oneof=original translation proofreading"`
	TargetID     uuid.UUID `json:"target_id" binding:"required"`
	MarkerNumber int       `json:"marker_number" binding:"required,gt=0"`
	EditorID     uuid.UUID `json:"editor_id" binding:"required"`
	TextBefore   *string   `json:"text_before"`
	TextAfter    string    `json:"text_after" binding:"required"`
	Comments     *string   `json:"comments"`
}

// RecordEditResult reports the appended entry and, when the window had
// lapsed, the checkpoint that was cut with it.
type RecordEditResult struct {
	HistoryID    uuid.UUID  `json:"history_id"`
	CheckpointID *uuid.UUID `json:"checkpoint_id,omitempty"`
}

type CreateCheckpointRequest struct {
	FileID                 uuid.UUID      `json:"file_id" binding:"required"`
	HistoryID              uuid.UUID      `json:"history_id" binding:"required"`
	OriginalTextModified   datatypes.JSON `json:"original_text_modified"`
	TranslatedTextModified datatypes.JSON `json:"translated_text_modified"`
	ProofreadedText        datatypes.JSON `json:"proofreaded_text"`
}

type Service struct {
	repo   Repository
	files  FileNodeRepository
	clk    clock.Clock
	ids    clock.IDGenerator
	window time.Duration
}

func NewService(repo Repository, files FileNodeRepository, clk clock.Clock, ids clock.IDGenerator, window time.Duration) *Service {
	return &Service{repo: repo, files: files, clk: clk, ids: ids, window: window}
}

// RecordEdit appends an entry to the change log. A checkpoint rides along
// when the file has none newer than the window; the edit itself is never
// rejected by checkpoint logic.
func (s *Service) RecordEdit(ctx context.Context, req RecordEditRequest) (*RecordEditResult, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	now := s.clk.Now()
	entry := &EditHistory{
		HistoryID:    s.ids.NewID(),
		FileID:       req.FileID,
		TargetType:   req.TargetType,
		TargetID:     req.TargetID,
		MarkerNumber: req.MarkerNumber,
		EditorID:     req.EditorID,
		TextBefore:   req.TextBefore,
		TextAfter:    req.TextAfter,
		Comments:     req.Comments,
		CreatedAt:    now,
	}

	cp, err := s.repo.RecordEdit(ctx, entry, s.ids.NewID(), now.Add(-s.window))
	if err != nil {
		return nil, err
	}

	res := &RecordEditResult{HistoryID: entry.HistoryID}
	if cp != nil {
		res.CheckpointID = &cp.CheckpointID
	}
	return res, nil
}

func (s *Service) ListHistory(ctx context.Context, fileID uuid.UUID, f HistoryFilter) ([]EditHistory, error) {
	return s.repo.ListHistory(ctx, fileID, f)
}

// CreateCheckpoint is the manual snapshot path: the caller supplies the
// overlay payloads and no window check applies.
func (s *Service) CreateCheckpoint(ctx context.Context, req CreateCheckpointRequest) (*Checkpoint, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	ok, err = s.repo.HistoryExists(ctx, req.HistoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrHistoryNotFound
	}

	cp := &Checkpoint{
		CheckpointID:           s.ids.NewID(),
		FileID:                 req.FileID,
		HistoryID:              req.HistoryID,
		OriginalTextModified:   req.OriginalTextModified,
		TranslatedTextModified: req.TranslatedTextModified,
		ProofreadedText:        req.ProofreadedText,
		CreatedAt:              s.clk.Now(),
	}
	if err := s.repo.CreateCheckpoint(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *Service) ListCheckpoints(ctx context.Context, fileID uuid.UUID, checkpointID *uuid.UUID) ([]Checkpoint, error) {
	return s.repo.ListCheckpoints(ctx, fileID, checkpointID)
}
