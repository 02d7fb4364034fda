package preset

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *FilePreset) error
	GetByID(ctx context.Context, id uuid.UUID) (*FilePreset, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, principalID uuid.UUID, description string) (bool, error)
	ListByPrincipal(ctx context.Context, principalID uuid.UUID) ([]FilePreset, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *FilePreset) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FilePreset, error) {
	var p FilePreset
	err := r.db.WithContext(ctx).Where("file_preset_id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FilePreset{}).
		Where("file_preset_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByName(ctx context.Context, principalID uuid.UUID, description string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FilePreset{}).
		Where("principal_id = ? AND description = ?", principalID, description).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByPrincipal(ctx context.Context, principalID uuid.UUID) ([]FilePreset, error) {
	var presets []FilePreset
	err := r.db.WithContext(ctx).
		Where("principal_id = ?", principalID).
		Order("updated_at DESC").
		Find(&presets).Error
	return presets, err
}

func (r *repository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&FilePreset{}).
		Where("file_preset_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("file_preset_id = ?", id).Delete(&FilePreset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}
