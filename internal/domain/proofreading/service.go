package proofreading

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aurorah/internal/pkg/clock"
)

// FileNodeRepository is the slice of the file node repository this
// package needs for referential checks.
type FileNodeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateProofreadingRequest struct {
	FileID          uuid.UUID      `json:"file_id" binding:"required"`
	AssigneeID      *uuid.UUID     `json:"assignee_id"`
	ParticipantIDs  datatypes.JSON `json:"participant_ids"`
	ProofreadedText datatypes.JSON `json:"proofreaded_text"`
}

type UpdateProofreadingRequest struct {
	AssigneeID      *uuid.UUID     `json:"assignee_id"`
	ParticipantIDs  datatypes.JSON `json:"participant_ids"`
	ProofreadedText datatypes.JSON `json:"proofreaded_text"`
}

type Service struct {
	repo  Repository
	files FileNodeRepository
	ids   clock.IDGenerator
}

func NewService(repo Repository, files FileNodeRepository, ids clock.IDGenerator) *Service {
	return &Service{repo: repo, files: files, ids: ids}
}

func (s *Service) Create(ctx context.Context, req CreateProofreadingRequest) (*Proofreading, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	p := &Proofreading{
		ProofreadingID:  s.ids.NewID(),
		FileID:          req.FileID,
		AssigneeID:      req.AssigneeID,
		ParticipantIDs:  req.ParticipantIDs,
		ProofreadedText: req.ProofreadedText,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Proofreading, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByFile(ctx context.Context, fileID uuid.UUID) ([]ListItem, error) {
	return s.repo.ListByFile(ctx, fileID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProofreadingRequest) error {
	fields := map[string]interface{}{}
	if req.AssigneeID != nil {
		fields["assignee_id"] = *req.AssigneeID
	}
	if req.ParticipantIDs != nil {
		fields["participant_ids"] = req.ParticipantIDs
	}
	if req.ProofreadedText != nil {
		fields["proofreaded_text"] = req.ProofreadedText
	}
	if len(fields) == 0 {
		ok, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProofreadingNotFound
		}
		return nil
	}

	return s.repo.Updates(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
