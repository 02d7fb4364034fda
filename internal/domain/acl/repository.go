package acl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *FileACL) error
	Get(ctx context.Context, fileID, principalID uuid.UUID) (*FileACL, error)
	ListByFile(ctx context.Context, fileID uuid.UUID, principalID *uuid.UUID) ([]FileACL, error)
	UpdateRole(ctx context.Context, fileID, principalID uuid.UUID, role string) error
	Delete(ctx context.Context, fileID, principalID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *FileACL) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Get(ctx context.Context, fileID, principalID uuid.UUID) (*FileACL, error) {
	var a FileACL
	err := r.db.WithContext(ctx).
		Where("file_id = ? AND principal_id = ?", fileID, principalID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrACLNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByFile(ctx context.Context, fileID uuid.UUID, principalID *uuid.UUID) ([]FileACL, error) {
	q := r.db.WithContext(ctx).Where("file_id = ?", fileID)
	if principalID != nil {
		q = q.Where("principal_id = ?", *principalID)
	}

	var grants []FileACL
	err := q.Order("created_at ASC").Find(&grants).Error
	return grants, err
}

func (r *repository) UpdateRole(ctx context.Context, fileID, principalID uuid.UUID, role string) error {
	res := r.db.WithContext(ctx).Model(&FileACL{}).
		Where("file_id = ? AND principal_id = ?", fileID, principalID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrACLNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, fileID, principalID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("file_id = ? AND principal_id = ?", fileID, principalID).
		Delete(&FileACL{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrACLNotFound
	}
	return nil
}
