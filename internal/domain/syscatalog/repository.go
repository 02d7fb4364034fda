package syscatalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// AgentRepository and ModelRepository are deliberately parallel; the two
// catalogs share their lifecycle but live in separate tables.

type AgentRepository interface {
	// GetAnyByID also returns soft-deleted rows, so callers can distinguish
	// absent / retired / active.
	GetAnyByID(ctx context.Context, id string) (*AIAgent, error)
	Create(ctx context.Context, a *AIAgent) error
	// Overwrite rewrites every mutable field and clears deleted_at.
	Overwrite(ctx context.Context, id string, fields map[string]interface{}) error
	Updates(ctx context.Context, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, id string) ([]AIAgent, error)
}

type ModelRepository interface {
	GetAnyByID(ctx context.Context, id string) (*LLMModel, error)
	Create(ctx context.Context, m *LLMModel) error
	Overwrite(ctx context.Context, id string, fields map[string]interface{}) error
	Updates(ctx context.Context, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, id string) ([]LLMModel, error)
}

type agentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) GetAnyByID(ctx context.Context, id string) (*AIAgent, error) {
	var a AIAgent
	err := r.db.WithContext(ctx).Unscoped().Where("ai_agent_id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *agentRepository) Create(ctx context.Context, a *AIAgent) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *agentRepository) Overwrite(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["deleted_at"] = nil
	res := r.db.WithContext(ctx).Unscoped().Model(&AIAgent{}).
		Where("ai_agent_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAgentNotFound
	}
	return nil
}

func (r *agentRepository) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&AIAgent{}).
		Where("ai_agent_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAgentNotFound
	}
	return nil
}

func (r *agentRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("ai_agent_id = ?", id).Delete(&AIAgent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAgentNotFound
	}
	return nil
}

func (r *agentRepository) List(ctx context.Context, id string) ([]AIAgent, error) {
	q := r.db.WithContext(ctx)
	if id != "" {
		q = q.Where("ai_agent_id = ?", id)
	}

	var rows []AIAgent
	err := q.Order("ui_sort_order ASC, ai_agent_id ASC").Find(&rows).Error
	return rows, err
}

type modelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) GetAnyByID(ctx context.Context, id string) (*LLMModel, error) {
	var m LLMModel
	err := r.db.WithContext(ctx).Unscoped().Where("llm_model_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *modelRepository) Create(ctx context.Context, m *LLMModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *modelRepository) Overwrite(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["deleted_at"] = nil
	res := r.db.WithContext(ctx).Unscoped().Model(&LLMModel{}).
		Where("llm_model_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrModelNotFound
	}
	return nil
}

func (r *modelRepository) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&LLMModel{}).
		Where("llm_model_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrModelNotFound
	}
	return nil
}

func (r *modelRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("llm_model_id = ?", id).Delete(&LLMModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrModelNotFound
	}
	return nil
}

func (r *modelRepository) List(ctx context.Context, id string) ([]LLMModel, error) {
	q := r.db.WithContext(ctx)
	if id != "" {
		q = q.Where("llm_model_id = ?", id)
	}

	var rows []LLMModel
	err := q.Order("ui_sort_order ASC, llm_model_id ASC").Find(&rows).Error
	return rows, err
}
