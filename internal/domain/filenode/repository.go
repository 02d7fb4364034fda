package filenode

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *FileNode) error
	GetByID(ctx context.Context, id uuid.UUID) (*FileNode, error)
	GetTrashed(ctx context.Context, id uuid.UUID) (*FileNode, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	NameExists(ctx context.Context, ownerID string, parentID *uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	ListAllFiles(ctx context.Context, ownerID string) ([]FileNode, error)
	ListShared(ctx context.Context, principalID uuid.UUID, ownerID string) ([]FileNode, error)
	ListTrash(ctx context.Context, ownerID string) ([]FileNode, error)
	ListChildren(ctx context.Context, ownerID string, parentID *uuid.UUID) ([]FileNode, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	CountActiveChildren(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *FileNode) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FileNode, error) {
	var n FileNode
	err := r.db.WithContext(ctx).Where("file_id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) GetTrashed(ctx context.Context, id uuid.UUID) (*FileNode, error) {
	var n FileNode
	err := r.db.WithContext(ctx).Unscoped().
		Where("file_id = ? AND deleted_at IS NOT NULL", id).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Exists reports whether an active (non-deleted) node exists. Other domains
// consume this through their own narrow interfaces.
func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FileNode{}).
		Where("file_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// NameExists reports whether an active sibling already uses the name.
// A nil parent matches only other root-level nodes.
func (r *repository) NameExists(ctx context.Context, ownerID string, parentID *uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&FileNode{}).
		Where("owner_id = ? AND file_name = ?", ownerID, name)

	if parentID == nil {
		q = q.Where("parent_file_id IS NULL")
	} else {
		q = q.Where("parent_file_id = ?", *parentID)
	}
	if excludeID != nil {
		q = q.Where("file_id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListAllFiles(ctx context.Context, ownerID string) ([]FileNode, error) {
	var nodes []FileNode
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND file_type = ?", ownerID, TypeFile).
		Order("updated_at DESC").
		Find(&nodes).Error
	return nodes, err
}

func (r *repository) ListShared(ctx context.Context, principalID uuid.UUID, ownerID string) ([]FileNode, error) {
	var nodes []FileNode
	err := r.db.WithContext(ctx).
		Joins("JOIN au_file_acl ON au_file_acl.file_id = au_file_nodes.file_id").
		Where("au_file_acl.principal_id = ?", principalID).
		Where("au_file_nodes.owner_id <> ?", ownerID).
		Order("au_file_nodes.updated_at DESC").
		Find(&nodes).Error
	return nodes, err
}

func (r *repository) ListTrash(ctx context.Context, ownerID string) ([]FileNode, error) {
	var nodes []FileNode
	err := r.db.WithContext(ctx).Unscoped().
		Where("owner_id = ? AND deleted_at IS NOT NULL", ownerID).
		Order("deleted_at DESC").
		Find(&nodes).Error
	return nodes, err
}

func (r *repository) ListChildren(ctx context.Context, ownerID string, parentID *uuid.UUID) ([]FileNode, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if parentID == nil {
		q = q.Where("parent_file_id IS NULL")
	} else {
		q = q.Where("parent_file_id = ?", *parentID)
	}

	var nodes []FileNode
	err := q.
		Order("CASE WHEN file_type = 'folder' THEN 0 ELSE 1 END").
		Order("file_name ASC").
		Find(&nodes).Error
	return nodes, err
}

func (r *repository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&FileNode{}).
		Where("file_id = ?", id).
		Updates(fields).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("file_id = ?", id).Delete(&FileNode{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFileNotFound
	}
	return nil
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Unscoped().Model(&FileNode{}).
		Where("file_id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFileNotFound
	}
	return nil
}

func (r *repository) CountActiveChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FileNode{}).
		Where("parent_file_id = ?", id).
		Count(&count).Error
	return count, err
}
