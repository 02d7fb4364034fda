package acl

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	files FileNodeRepository
}

func NewService(repo Repository, files FileNodeRepository) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) Create(ctx context.Context, req CreateACLRequest) (*FileACL, error) {
	ok, err := s.files.Exists(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFileNotFound
	}

	if _, err := s.repo.Get(ctx, req.FileID, req.PrincipalID); err == nil {
		return nil, ErrACLExists
	} else if err != ErrACLNotFound {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "viewer"
	}

	a := &FileACL{
		FileID:      req.FileID,
		PrincipalID: req.PrincipalID,
		Role:        role,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListByFile(ctx context.Context, fileID uuid.UUID, principalID *uuid.UUID) ([]FileACL, error) {
	return s.repo.ListByFile(ctx, fileID, principalID)
}

func (s *Service) UpdateRole(ctx context.Context, req UpdateACLRequest) error {
	return s.repo.UpdateRole(ctx, req.FileID, req.PrincipalID, req.Role)
}

func (s *Service) Delete(ctx context.Context, fileID, principalID uuid.UUID) error {
	return s.repo.Delete(ctx, fileID, principalID)
}
