package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HistoryFilter narrows a history listing; zero values mean no filter.
type HistoryFilter struct {
	TargetType   string
	TargetID     *uuid.UUID
	MarkerNumber *int
}

type Repository interface {
	// RecordEdit appends the entry and, when the file's newest checkpoint is
	// absent or not newer than cutoff, snapshots the current overlay state as
	// a checkpoint in the same transaction. cpID is the id the checkpoint
	// gets when one is cut; the return is nil when none was.
	RecordEdit(ctx context.Context, entry *EditHistory, cpID uuid.UUID, cutoff time.Time) (*Checkpoint, error)
	ListHistory(ctx context.Context, fileID uuid.UUID, f HistoryFilter) ([]EditHistory, error)
	HistoryExists(ctx context.Context, historyID uuid.UUID) (bool, error)
	CreateCheckpoint(ctx context.Context, cp *Checkpoint) error
	ListCheckpoints(ctx context.Context, fileID uuid.UUID, checkpointID *uuid.UUID) ([]Checkpoint, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RecordEdit(ctx context.Context, entry *EditHistory, cpID uuid.UUID, cutoff time.Time) (*Checkpoint, error) {
	var cp *Checkpoint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		// newest checkpoint via ORDER BY + LIMIT 1, which walks the
		// (file_id, created_at) index instead of aggregating
		var newest Checkpoint
		err := tx.Where("file_id = ?", entry.FileID).
			Order("created_at DESC").
			First(&newest).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && newest.CreatedAt.After(cutoff) {
			return nil
		}

		snap, err := snapshotOverlays(tx, entry.FileID)
		if err != nil {
			return err
		}

		c := &Checkpoint{
			CheckpointID:           cpID,
			FileID:                 entry.FileID,
			HistoryID:              entry.HistoryID,
			OriginalTextModified:   snap.OriginalTextModified,
			TranslatedTextModified: snap.TranslatedTextModified,
			ProofreadedText:        snap.ProofreadedText,
			CreatedAt:              entry.CreatedAt,
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		cp = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

type overlaySnapshot struct {
	OriginalTextModified   datatypes.JSON `gorm:"column:original_text_modified"`
	TranslatedTextModified datatypes.JSON `gorm:"column:translated_text_modified"`
	ProofreadedText        datatypes.JSON `gorm:"column:proofreaded_text"`
}

// snapshotOverlays gathers the file's current modified-overlay state through
// the task linkage. Links the task does not have yet come back as NULLs, and
// a file without a task snapshots as all-NULL.
func snapshotOverlays(tx *gorm.DB, fileID uuid.UUID) (*overlaySnapshot, error) {
	var snap overlaySnapshot
	err := tx.
		Table("au_file_tasks AS ft").
		Select("o.original_text_modified, t.translated_text_modified, p.proofreaded_text").
		Joins("LEFT JOIN au_file_original o ON o.original_id = ft.original_id").
		Joins("LEFT JOIN au_file_translation t ON t.translation_id = ft.translation_id_1st").
		Joins("LEFT JOIN au_file_proofreading p ON p.proofreading_id = ft.proofreading_id").
		Where("ft.file_id = ?", fileID).
		Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &overlaySnapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) ListHistory(ctx context.Context, fileID uuid.UUID, f HistoryFilter) ([]EditHistory, error) {
	q := r.db.WithContext(ctx).Where("file_id = ?", fileID)
	if f.TargetType != "" {
		q = q.Where("target_type = ?", f.TargetType)
	}
	if f.TargetID != nil {
		q = q.Where("target_id = ?", *f.TargetID)
	}
	if f.MarkerNumber != nil {
		q = q.Where("marker_number = ?", *f.MarkerNumber)
	}

	var rows []EditHistory
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) HistoryExists(ctx context.Context, historyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&EditHistory{}).
		Where("history_id = ?", historyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateCheckpoint(ctx context.Context, cp *Checkpoint) error {
	return r.db.WithContext(ctx).Create(cp).Error
}

func (r *repository) ListCheckpoints(ctx context.Context, fileID uuid.UUID, checkpointID *uuid.UUID) ([]Checkpoint, error) {
	q := r.db.WithContext(ctx).Where("file_id = ?", fileID)
	if checkpointID != nil {
		q = q.Where("checkpoint_id = ?", *checkpointID)
	}

	var rows []Checkpoint
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}
