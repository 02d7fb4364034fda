package filenode

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"aurorah/internal/pkg/clock"
)

const (
	OptionAllFiles    = "all-files"
	OptionSharedFiles = "shared-files"
	OptionTrashFiles  = "trash-files"
	OptionNodes       = "nodes"
)

type Service struct {
	repo Repository
	ids  clock.IDGenerator
}

func NewService(repo Repository, ids clock.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

func (s *Service) Create(ctx context.Context, req CreateFileNodeRequest) (*FileNode, error) {
	fileType := req.FileType
	if fileType == "" {
		fileType = TypeFolder
	}

	if req.ParentFileID != nil {
		if err := s.checkParent(ctx, *req.ParentFileID); err != nil {
			return nil, err
		}
	}

	exists, err := s.repo.NameExists(ctx, req.OwnerID, req.ParentFileID, req.FileName, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameExists
	}

	n := &FileNode{
		FileID:       s.ids.NewID(),
		OwnerID:      req.OwnerID,
		ParentFileID: req.ParentFileID,
		FileType:     fileType,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		FileExt:      req.FileExt,
		FileSize:     req.FileSize,
		MimeType:     req.MimeType,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, translateSiblingConflict(err)
	}
	return n, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*FileNode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q ListFileNodesQuery) ([]FileNode, error) {
	option := q.Option
	if option == "" {
		option = OptionAllFiles
	}

	switch option {
	case OptionAllFiles:
		return s.repo.ListAllFiles(ctx, q.OwnerID)

	case OptionSharedFiles:
		pid, err := uuid.Parse(q.OwnerID)
		if err != nil {
			return nil, ErrValidation
		}
		return s.repo.ListShared(ctx, pid, q.OwnerID)

	case OptionTrashFiles:
		return s.repo.ListTrash(ctx, q.OwnerID)

	case OptionNodes:
		return s.repo.ListChildren(ctx, q.OwnerID, q.ParentFileID)

	default:
		return nil, ErrValidation
	}
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateFileNodeRequest) (*FileNode, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.FileName != nil && *req.FileName != n.FileName {
		exists, err := s.repo.NameExists(ctx, n.OwnerID, n.ParentFileID, *req.FileName, &n.FileID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNameExists
		}
		fields["file_name"] = *req.FileName
	}
	if req.FileURL != nil {
		fields["file_url"] = *req.FileURL
	}
	if req.FileSize != nil {
		fields["file_size"] = *req.FileSize
	}
	if req.MimeType != nil {
		fields["mime_type"] = *req.MimeType
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) == 0 {
		return n, nil
	}

	if err := s.repo.Updates(ctx, id, fields); err != nil {
		return nil, translateSiblingConflict(err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if n.IsFolder() {
		count, err := s.repo.CountActiveChildren(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrFolderNotEmpty
		}
	}

	return s.repo.SoftDelete(ctx, id)
}

// Duplicate copies a node's metadata into the same parent, probing
// "name (copy)", "name (copy 2)", ... until a free sibling name is found.
func (s *Service) Duplicate(ctx context.Context, id uuid.UUID) (*FileNode, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s (copy)", src.FileName)
	for n := 2; ; n++ {
		exists, err := s.repo.NameExists(ctx, src.OwnerID, src.ParentFileID, name, nil)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		name = fmt.Sprintf("%s (copy %d)", src.FileName, n)
	}

	dup := &FileNode{
		FileID:       s.ids.NewID(),
		OwnerID:      src.OwnerID,
		ParentFileID: src.ParentFileID,
		FileType:     src.FileType,
		FileName:     name,
		FileURL:      src.FileURL,
		FileExt:      src.FileExt,
		FileSize:     src.FileSize,
		MimeType:     src.MimeType,
		Description:  src.Description,
	}

	if err := s.repo.Create(ctx, dup); err != nil {
		return nil, translateSiblingConflict(err)
	}
	return dup, nil
}

func (s *Service) Move(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if newParentID != nil {
		if *newParentID == id {
			return ErrMoveIntoSelf
		}
		if err := s.checkParent(ctx, *newParentID); err != nil {
			return err
		}
	}

	exists, err := s.repo.NameExists(ctx, n.OwnerID, newParentID, n.FileName, &n.FileID)
	if err != nil {
		return err
	}
	if exists {
		return ErrNameExists
	}

	var parent interface{}
	if newParentID != nil {
		parent = *newParentID
	}
	if err := s.repo.Updates(ctx, id, map[string]interface{}{"parent_file_id": parent}); err != nil {
		return translateSiblingConflict(err)
	}
	return nil
}

// Restore brings a trashed node back. A live sibling may have taken the
// name in the meantime, so the conflict check runs again.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*FileNode, error) {
	n, err := s.repo.GetTrashed(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(ctx, n.OwnerID, n.ParentFileID, n.FileName, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameExists
	}

	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) checkParent(ctx context.Context, parentID uuid.UUID) error {
	parent, err := s.repo.GetByID(ctx, parentID)
	if err == ErrFileNotFound {
		return ErrParentNotFound
	}
	if err != nil {
		return err
	}
	if !parent.IsFolder() {
		return ErrParentNotFound
	}
	return nil
}

// translateSiblingConflict maps a unique violation on the sibling-name
// index to the same conflict the pre-check reports. The index only fires
// on racing writes that slip past the SELECT.
func translateSiblingConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "udx_file_nodes_sibling" {
			return ErrNameExists
		}
	}
	return err
}
