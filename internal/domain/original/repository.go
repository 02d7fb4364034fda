package original

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, o *Original) error
	ExistsForFile(ctx context.Context, fileID uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, fileID, originalID *uuid.UUID) ([]Original, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Original) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) ExistsForFile(ctx context.Context, fileID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Original{}).
		Where("file_id = ?", fileID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Original{}).
		Where("original_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) List(ctx context.Context, fileID, originalID *uuid.UUID) ([]Original, error) {
	q := r.db.WithContext(ctx).Model(&Original{})
	if fileID != nil {
		q = q.Where("file_id = ?", *fileID)
	}
	if originalID != nil {
		q = q.Where("original_id = ?", *originalID)
	}

	var rows []Original
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&Original{}).
		Where("original_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOriginalNotFound
	}
	return nil
}
