package translation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/domain/preset"
	"aurorah/internal/pkg/clock"
)

// FileNodeRepository is the slice of the filenode repository this package
// needs. Satisfied by filenode.Repository.
type FileNodeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// PresetRepository provides the preset row being snapshotted. Satisfied by
// preset.Repository.
type PresetRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*preset.FilePreset, error)
}

type Service struct {
	repo    Repository
	files   FileNodeRepository
	presets PresetRepository
	ids     clock.IDGenerator
}

func NewService(repo Repository, files FileNodeRepository, presets PresetRepository, ids clock.IDGenerator) *Service {
	return &Service{repo: repo, files: files, presets: presets, ids: ids}
}

type CreateTranslationRequest struct {
	FileID         uuid.UUID      `json:"file_id" binding:"required"`
	FilePresetID   uuid.UUID      `json:"file_preset_id" binding:"required"`
	FilePresetJSON datatypes.JSON `json:"file_preset_json"`
	AssigneeID     uuid.UUID      `json:"assignee_id" binding:"required"`
	TranslatedText datatypes.JSON `json:"translated_text"`
}

// UpdateTranslationRequest carries partial changes; nil fields stay unchanged.
type UpdateTranslationRequest struct {
	AssigneeID             *uuid.UUID     `json:"assignee_id"`
	TranslatedText         datatypes.JSON `json:"translated_text"`
	TranslatedTextModified datatypes.JSON `json:"translated_text_modified"`
}

func (s *Service) Create(ctx context.Context, req CreateTranslationRequest) (*Translation, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	p, err := s.presets.GetByID(ctx, req.FilePresetID)
	if err == preset.ErrPresetNotFound {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, err
	}

	// the snapshot is taken at creation time; callers may send their own,
	// otherwise the current preset row is serialized
	snapshot := req.FilePresetJSON
	if snapshot == nil {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("snapshot preset: %w", err)
		}
		snapshot = raw
	}

	t := &Translation{
		TranslationID:  s.ids.NewID(),
		FileID:         req.FileID,
		FilePresetID:   req.FilePresetID,
		FilePresetJSON: snapshot,
		AssigneeID:     req.AssigneeID,
		TranslatedText: req.TranslatedText,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Translation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByFile(ctx context.Context, fileID uuid.UUID) ([]ListItem, error) {
	return s.repo.ListByFile(ctx, fileID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateTranslationRequest) error {
	fields := map[string]interface{}{}
	if req.AssigneeID != nil {
		fields["assignee_id"] = *req.AssigneeID
	}
	if req.TranslatedText != nil {
		fields["translated_text"] = req.TranslatedText
	}
	if req.TranslatedTextModified != nil {
		fields["translated_text_modified"] = req.TranslatedTextModified
	}
	if len(fields) == 0 {
		ok, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTranslationNotFound
		}
		return nil
	}

	return s.repo.Updates(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
