package translation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Translation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Translation, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListByFile(ctx context.Context, fileID uuid.UUID) ([]ListItem, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Translation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Translation, error) {
	var t Translation
	err := r.db.WithContext(ctx).Where("translation_id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTranslationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Translation{}).
		Where("translation_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByFile(ctx context.Context, fileID uuid.UUID) ([]ListItem, error) {
	var items []ListItem
	err := r.db.WithContext(ctx).Model(&Translation{}).
		Select("translation_id, file_id, file_preset_id, assignee_id, created_at, updated_at").
		Where("file_id = ?", fileID).
		Order("created_at DESC").
		Scan(&items).Error
	return items, err
}

func (r *repository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&Translation{}).
		Where("translation_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTranslationNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("translation_id = ?", id).Delete(&Translation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTranslationNotFound
	}
	return nil
}
