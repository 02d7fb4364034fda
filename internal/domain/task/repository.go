package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aurorah/internal/domain/original"
)

type Repository interface {
	CreateWithOriginal(ctx context.Context, t *Task, o *original.Original) error
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*Task, error)
	Exists(ctx context.Context, fileID uuid.UUID) (bool, error)
	GetDetails(ctx context.Context, fileID uuid.UUID) (*Details, error)
	Updates(ctx context.Context, fileID uuid.UUID, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithOriginal inserts the Original and the Task in one transaction.
// A conflict on either table rolls back both inserts.
func (r *repository) CreateWithOriginal(ctx context.Context, t *Task, o *original.Original) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Task{}).Where("file_id = ?", t.FileID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTaskExists
		}

		if err := tx.Model(&original.Original{}).Where("file_id = ?", o.FileID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrOriginalExists
		}

		if err := tx.Create(o).Error; err != nil {
			return err
		}

		t.OriginalID = o.OriginalID
		return tx.Create(t).Error
	})
}

func (r *repository) GetByFileID(ctx context.Context, fileID uuid.UUID) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).Where("file_id = ?", fileID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Exists(ctx context.Context, fileID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Task{}).
		Where("file_id = ?", fileID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetDetails(ctx context.Context, fileID uuid.UUID) (*Details, error) {
	var d Details
	err := r.db.WithContext(ctx).
		Table("au_file_tasks AS t").
		Select("t.file_id, t.file_preset_id, t.original_id,"+
			" o.original_text, o.original_text_modified,"+
			" t.translation_id_1st, t.translation_id_2nd, t.proofreading_id,"+
			" n.file_type, n.file_name, n.file_url, n.file_ext, n.file_size, n.mime_type, n.description,"+
			" t.created_at, t.updated_at").
		Joins("JOIN au_file_original o ON o.original_id = t.original_id").
		Joins("JOIN au_file_nodes n ON n.file_id = t.file_id").
		Where("t.file_id = ?", fileID).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Updates(ctx context.Context, fileID uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&Task{}).
		Where("file_id = ?", fileID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
