package original

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/pkg/clock"
)

// FileNodeRepository is the slice of the filenode repository this package
// needs. Satisfied by filenode.Repository.
type FileNodeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo  Repository
	files FileNodeRepository
	ids   clock.IDGenerator
}

func NewService(repo Repository, files FileNodeRepository, ids clock.IDGenerator) *Service {
	return &Service{repo: repo, files: files, ids: ids}
}

type CreateOriginalRequest struct {
	FileID       uuid.UUID      `json:"file_id" binding:"required"`
	OriginalText datatypes.JSON `json:"original_text" binding:"required"`
}

// UpdateOriginalRequest carries partial changes; nil fields stay unchanged.
type UpdateOriginalRequest struct {
	OriginalText         datatypes.JSON `json:"original_text"`
	OriginalTextModified datatypes.JSON `json:"original_text_modified"`
}

func (s *Service) Create(ctx context.Context, req CreateOriginalRequest) (*Original, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	exists, err := s.repo.ExistsForFile(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOriginalExists
	}

	o := &Original{
		OriginalID:   s.ids.NewID(),
		FileID:       req.FileID,
		OriginalText: req.OriginalText,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, fileID, originalID *uuid.UUID) ([]Original, error) {
	return s.repo.List(ctx, fileID, originalID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateOriginalRequest) error {
	fields := map[string]interface{}{}
	if req.OriginalText != nil {
		fields["original_text"] = req.OriginalText
	}
	if req.OriginalTextModified != nil {
		fields["original_text_modified"] = req.OriginalTextModified
	}
	if len(fields) == 0 {
		ok, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOriginalNotFound
		}
		return nil
	}

	return s.repo.Updates(ctx, id, fields)
}
