package preset

import (
	"context"

	"github.com/google/uuid"

	"aurorah/internal/pkg/clock"
)

type Service struct {
	repo Repository
	ids  clock.IDGenerator
}

func NewService(repo Repository, ids clock.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

// Create rejects a second active bundle with the same name for the same
// principal; the description doubles as the bundle's display name.
func (s *Service) Create(ctx context.Context, req CreatePresetRequest) (*FilePreset, error) {
	exists, err := s.repo.ExistsByName(ctx, req.PrincipalID, req.Description)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPresetExists
	}

	p := &FilePreset{
		FilePresetID:        s.ids.NewID(),
		PrincipalID:         req.PrincipalID,
		Description:         req.Description,
		LLMModelID:          req.LLMModelID,
		LLMModelTemperature: req.LLMModelTemperature,
		AIAgentID:           orDefault(req.AIAgentID, "agent_translation_a1"),
		TranslationMemory:   req.TranslationMemory,
		TranslationRole:     req.TranslationRole,
		TranslationRule:     req.TranslationRule,
		TargetLanguage:      req.TargetLanguage,
		TargetCountry:       req.TargetCountry,
		TargetCity:          req.TargetCity,
		TaskType:            orDefault(req.TaskType, "localization"),
		Audience:            orDefault(req.Audience, "general"),
		Purpose:             req.Purpose,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*FilePreset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPrincipal(ctx context.Context, principalID uuid.UUID) ([]FilePreset, error) {
	return s.repo.ListByPrincipal(ctx, principalID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePresetRequest) error {
	fields := map[string]interface{}{}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.LLMModelID != nil {
		fields["llm_model_id"] = *req.LLMModelID
	}
	if req.LLMModelTemperature != nil {
		fields["llm_model_temperature"] = *req.LLMModelTemperature
	}
	if req.AIAgentID != nil {
		fields["ai_agent_id"] = *req.AIAgentID
	}
	if req.TranslationMemory != nil {
		fields["translation_memory"] = *req.TranslationMemory
	}
	if req.TranslationRole != nil {
		fields["translation_role"] = *req.TranslationRole
	}
	if req.TranslationRule != nil {
		fields["translation_rule"] = *req.TranslationRule
	}
	if req.TargetLanguage != nil {
		fields["target_language"] = *req.TargetLanguage
	}
	if req.TargetCountry != nil {
		fields["target_country"] = *req.TargetCountry
	}
	if req.TargetCity != nil {
		fields["target_city"] = *req.TargetCity
	}
	if req.TaskType != nil {
		fields["task_type"] = *req.TaskType
	}
	if req.Audience != nil {
		fields["audience"] = *req.Audience
	}
	if req.Purpose != nil {
		fields["purpose"] = *req.Purpose
	}

	if len(fields) == 0 {
		// still a lookup so a missing preset reports 404
		_, err := s.repo.GetByID(ctx, id)
		return err
	}

	return s.repo.Updates(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
