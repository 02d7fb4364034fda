package proofreading

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Proofreading) error
	GetByID(ctx context.Context, id uuid.UUID) (*Proofreading, error)
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

func (r *repository) Create(ctx context.Context, p *Proofreading) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Proofreading, error) {
	var p Proofreading
	err := r.db.WithContext(ctx).Where("proofreading_id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProofreadingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Proofreading{}).
		Where("proofreading_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByFile(ctx context.Context, fileID uuid.UUID) ([]ListItem, error) {
	var items []ListItem
	err := r.db.WithContext(ctx).Model(&Proofreading{}).
		Select("proofreading_id, file_id, assignee_id, created_at, updated_at").
		Where("file_id = ?", fileID).
		Order("created_at DESC").
		Scan(&items).Error
	return items, err
}

func (r *repository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&Proofreading{}).
		Where("proofreading_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProofreadingNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("proofreading_id = ?", id).Delete(&Proofreading{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProofreadingNotFound
	}
	return nil
}
