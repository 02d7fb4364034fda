package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/original"
	"aurorah/internal/pkg/clock"
	"aurorah/internal/pkg/textseg"
)

type CreateTaskRequest struct {
	FileID       uuid.UUID      `json:"file_id" binding:"required"`
	FilePresetID *uuid.UUID     `json:"file_preset_id"`
	OriginalText datatypes.JSON `json:"original_text" binding:"required"`
}

// UpdateTaskRequest repoints link slots; nil fields stay unchanged.
type UpdateTaskRequest struct {
	FilePresetID     *uuid.UUID `json:"file_preset_id"`
	TranslationID1st *uuid.UUID `json:"translation_id_1st"`
	TranslationID2nd *uuid.UUID `json:"translation_id_2nd"`
	ProofreadingID   *uuid.UUID `json:"proofreading_id"`
}

type Service struct {
	repo          Repository
	files         FileNodeRepository
	presets       PresetRepository
	translations  TranslationRepository
	proofreadings ProofreadingRepository
	fetcher       Fetcher
	ids           clock.IDGenerator
}

func NewService(
	repo Repository,
	files FileNodeRepository,
	presets PresetRepository,
	translations TranslationRepository,
	proofreadings ProofreadingRepository,
	fetcher Fetcher,
	ids clock.IDGenerator,
) *Service {
	return &Service{
		repo:          repo,
		files:         files,
		presets:       presets,
		translations:  translations,
		proofreadings: proofreadings,
		fetcher:       fetcher,
		ids:           ids,
	}
}

// Create makes the task and its Original together. The repository runs both
// inserts in one transaction, so a conflict on either leaves no partial rows.
func (s *Service) Create(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	o := &original.Original{
		OriginalID:   s.ids.NewID(),
		FileID:       req.FileID,
		OriginalText: req.OriginalText,
	}
	t := &Task{
		FileID:       req.FileID,
		FilePresetID: req.FilePresetID,
	}
	if err := s.repo.CreateWithOriginal(ctx, t, o); err != nil {
		return nil, err
	}
	return t, nil
}

// Open returns the file's task, creating it on first open: the node's
// file_url is fetched and the raw text segmented into original_text.
func (s *Service) Open(ctx context.Context, fileID uuid.UUID) (*Task, error) {
	t, err := s.repo.GetByFileID(ctx, fileID)
	if err == nil {
		return t, nil
	}
	if err != ErrTaskNotFound {
		return nil, err
	}

	node, err := s.files.GetByID(ctx, fileID)
	if err == filenode.ErrFileNotFound {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	if node.FileURL == nil || *node.FileURL == "" {
		return nil, ErrNoFileURL
	}

	raw, err := s.fetcher.ReadRawText(ctx, *node.FileURL)
	if err != nil {
		return nil, ErrFetchFailed
	}

	doc := textseg.Analyze(raw)
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode segments: %w", err)
	}

	return s.Create(ctx, CreateTaskRequest{FileID: fileID, OriginalText: payload})
}

func (s *Service) GetByFileID(ctx context.Context, fileID uuid.UUID) (*Task, error) {
	return s.repo.GetByFileID(ctx, fileID)
}

func (s *Service) GetDetails(ctx context.Context, fileID uuid.UUID) (*Details, error) {
	return s.repo.GetDetails(ctx, fileID)
}

// Update repoints link slots. Every non-nil id must reference an existing
// row before anything is written.
func (s *Service) Update(ctx context.Context, fileID uuid.UUID, req UpdateTaskRequest) error {
	fields := map[string]interface{}{}

	if req.FilePresetID != nil {
		ok, err := s.presets.Exists(ctx, *req.FilePresetID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPresetNotFound
		}
		fields["file_preset_id"] = *req.FilePresetID
	}
	if req.TranslationID1st != nil {
		ok, err := s.translations.Exists(ctx, *req.TranslationID1st)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTranslationNotFound
		}
		fields["translation_id_1st"] = *req.TranslationID1st
	}
	if req.TranslationID2nd != nil {
		ok, err := s.translations.Exists(ctx, *req.TranslationID2nd)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTranslationNotFound
		}
		fields["translation_id_2nd"] = *req.TranslationID2nd
	}
	if req.ProofreadingID != nil {
		ok, err := s.proofreadings.Exists(ctx, *req.ProofreadingID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProofreadingNotFound
		}
		fields["proofreading_id"] = *req.ProofreadingID
	}

	if len(fields) == 0 {
		ok, err := s.repo.Exists(ctx, fileID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTaskNotFound
		}
		return nil
	}

	return s.repo.Updates(ctx, fileID, fields)
}
