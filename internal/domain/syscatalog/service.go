package syscatalog

import "context"

// UpsertOutcome tells the caller which of the three upsert branches ran, so
// the handler can answer 201 created / 200 updated / 200 no change.
type UpsertOutcome int

const (
	UpsertCreated UpsertOutcome = iota
	UpsertUpdated
	UpsertUnchanged
)

type UpsertAgentRequest struct {
	AIAgentID      string  `json:"ai_agent_id" binding:"required,max=64"`
	AIAgentTitle   string  `json:"ai_agent_title" binding:"required,max=64"`
	AIAgentKeyword string  `json:"ai_agent_keyword" binding:"required,max=64"`
	UISortOrder    string  `json:"ui_sort_order" binding:"omitempty,max=64"`
	Description    *string `json:"description" binding:"omitempty,max=512"`
}

type UpdateAgentRequest struct {
	AIAgentTitle   *string `json:"ai_agent_title"`
	AIAgentKeyword *string `json:"ai_agent_keyword"`
	UISortOrder    *string `json:"ui_sort_order"`
	Description    *string `json:"description"`
}

type UpsertModelRequest struct {
	LLMModelID      string  `json:"llm_model_id" binding:"required,max=64"`
	LLMModelTitle   string  `json:"llm_model_title" binding:"required,max=64"`
	LLMModelKeyword string  `json:"llm_model_keyword" binding:"required,max=64"`
	Provider        string  `json:"provider" binding:"required,max=64"`
	UISortOrder     string  `json:"ui_sort_order" binding:"omitempty,max=64"`
	Description     *string `json:"description" binding:"omitempty,max=512"`
}

type UpdateModelRequest struct {
	LLMModelTitle   *string `json:"llm_model_title"`
	LLMModelKeyword *string `json:"llm_model_keyword"`
	Provider        *string `json:"provider"`
	UISortOrder     *string `json:"ui_sort_order"`
	Description     *string `json:"description"`
}

type Service struct {
	agents AgentRepository
	models ModelRepository
}

func NewService(agents AgentRepository, models ModelRepository) *Service {
	return &Service{agents: agents, models: models}
}

// UpsertAgent is the idempotent sync path used by seeders. An identical
// active row is left completely untouched so updated_at does not advance.
func (s *Service) UpsertAgent(ctx context.Context, req UpsertAgentRequest) (UpsertOutcome, error) {
	if req.UISortOrder == "" {
		req.UISortOrder = DefaultSortOrder
	}

	existing, err := s.agents.GetAnyByID(ctx, req.AIAgentID)
	if err == ErrAgentNotFound {
		a := &AIAgent{
			AIAgentID:      req.AIAgentID,
			AIAgentTitle:   req.AIAgentTitle,
			AIAgentKeyword: req.AIAgentKeyword,
			UISortOrder:    req.UISortOrder,
			Description:    req.Description,
		}
		if err := s.agents.Create(ctx, a); err != nil {
			return 0, err
		}
		return UpsertCreated, nil
	}
	if err != nil {
		return 0, err
	}

	if !existing.DeletedAt.Valid && agentUnchanged(existing, req) {
		return UpsertUnchanged, nil
	}

	err = s.agents.Overwrite(ctx, req.AIAgentID, map[string]interface{}{
		"ai_agent_title":   req.AIAgentTitle,
		"ai_agent_keyword": req.AIAgentKeyword,
		"ui_sort_order":    req.UISortOrder,
		"description":      req.Description,
	})
	if err != nil {
		return 0, err
	}
	return UpsertUpdated, nil
}

// CreateAgent is the strict path: an active row with the same id is a
// conflict. A retired row comes back resurrected with the new values.
func (s *Service) CreateAgent(ctx context.Context, req UpsertAgentRequest) error {
	if req.UISortOrder == "" {
		req.UISortOrder = DefaultSortOrder
	}

	existing, err := s.agents.GetAnyByID(ctx, req.AIAgentID)
	if err == ErrAgentNotFound {
		return s.agents.Create(ctx, &AIAgent{
			AIAgentID:      req.AIAgentID,
			AIAgentTitle:   req.AIAgentTitle,
			AIAgentKeyword: req.AIAgentKeyword,
			UISortOrder:    req.UISortOrder,
			Description:    req.Description,
		})
	}
	if err != nil {
		return err
	}
	if !existing.DeletedAt.Valid {
		return ErrAgentExists
	}

	return s.agents.Overwrite(ctx, req.AIAgentID, map[string]interface{}{
		"ai_agent_title":   req.AIAgentTitle,
		"ai_agent_keyword": req.AIAgentKeyword,
		"ui_sort_order":    req.UISortOrder,
		"description":      req.Description,
	})
}

func (s *Service) UpdateAgent(ctx context.Context, id string, req UpdateAgentRequest) error {
	fields := map[string]interface{}{}
	if req.AIAgentTitle != nil {
		fields["ai_agent_title"] = *req.AIAgentTitle
	}
	if req.AIAgentKeyword != nil {
		fields["ai_agent_keyword"] = *req.AIAgentKeyword
	}
	if req.UISortOrder != nil {
		fields["ui_sort_order"] = *req.UISortOrder
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		existing, err := s.agents.GetAnyByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.DeletedAt.Valid {
			return ErrAgentNotFound
		}
		return nil
	}

	return s.agents.Updates(ctx, id, fields)
}

func (s *Service) DeleteAgent(ctx context.Context, id string) error {
	return s.agents.SoftDelete(ctx, id)
}

func (s *Service) ListAgents(ctx context.Context, id string) ([]AIAgent, error) {
	return s.agents.List(ctx, id)
}

func (s *Service) UpsertModel(ctx context.Context, req UpsertModelRequest) (UpsertOutcome, error) {
	if req.UISortOrder == "" {
		req.UISortOrder = DefaultSortOrder
	}

	existing, err := s.models.GetAnyByID(ctx, req.LLMModelID)
	if err == ErrModelNotFound {
		m := &LLMModel{
			LLMModelID:      req.LLMModelID,
			LLMModelTitle:   req.LLMModelTitle,
			LLMModelKeyword: req.LLMModelKeyword,
			Provider:        req.Provider,
			UISortOrder:     req.UISortOrder,
			Description:     req.Description,
		}
		if err := s.models.Create(ctx, m); err != nil {
			return 0, err
		}
		return UpsertCreated, nil
	}
	if err != nil {
		return 0, err
	}

	if !existing.DeletedAt.Valid && modelUnchanged(existing, req) {
		return UpsertUnchanged, nil
	}

	err = s.models.Overwrite(ctx, req.LLMModelID, map[string]interface{}{
		"llm_model_title":   req.LLMModelTitle,
		"llm_model_keyword": req.LLMModelKeyword,
		"provider":          req.Provider,
		"ui_sort_order":     req.UISortOrder,
		"description":       req.Description,
	})
	if err != nil {
		return 0, err
	}
	return UpsertUpdated, nil
}

func (s *Service) CreateModel(ctx context.Context, req UpsertModelRequest) error {
	if req.UISortOrder == "" {
		req.UISortOrder = DefaultSortOrder
	}

	existing, err := s.models.GetAnyByID(ctx, req.LLMModelID)
	if err == ErrModelNotFound {
		return s.models.Create(ctx, &LLMModel{
			LLMModelID:      req.LLMModelID,
			LLMModelTitle:   req.LLMModelTitle,
			LLMModelKeyword: req.LLMModelKeyword,
			Provider:        req.Provider,
			UISortOrder:     req.UISortOrder,
			Description:     req.Description,
		})
	}
	if err != nil {
		return err
	}
	if !existing.DeletedAt.Valid {
		return ErrModelExists
	}

	return s.models.Overwrite(ctx, req.LLMModelID, map[string]interface{}{
		"llm_model_title":   req.LLMModelTitle,
		"llm_model_keyword": req.LLMModelKeyword,
		"provider":          req.Provider,
		"ui_sort_order":     req.UISortOrder,
		"description":       req.Description,
	})
}

func (s *Service) UpdateModel(ctx context.Context, id string, req UpdateModelRequest) error {
	fields := map[string]interface{}{}
	if req.LLMModelTitle != nil {
		fields["llm_model_title"] = *req.LLMModelTitle
	}
	if req.LLMModelKeyword != nil {
		fields["llm_model_keyword"] = *req.LLMModelKeyword
	}
	if req.Provider != nil {
		fields["provider"] = *req.Provider
	}
	if req.UISortOrder != nil {
		fields["ui_sort_order"] = *req.UISortOrder
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		existing, err := s.models.GetAnyByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.DeletedAt.Valid {
			return ErrModelNotFound
		}
		return nil
	}

	return s.models.Updates(ctx, id, fields)
}

func (s *Service) DeleteModel(ctx context.Context, id string) error {
	return s.models.SoftDelete(ctx, id)
}

func (s *Service) ListModels(ctx context.Context, id string) ([]LLMModel, error) {
	return s.models.List(ctx, id)
}

func agentUnchanged(a *AIAgent, req UpsertAgentRequest) bool {
	return a.AIAgentTitle == req.AIAgentTitle &&
		a.AIAgentKeyword == req.AIAgentKeyword &&
		a.UISortOrder == req.UISortOrder &&
		strPtrEqual(a.Description, req.Description)
}

func modelUnchanged(m *LLMModel, req UpsertModelRequest) bool {
	return m.LLMModelTitle == req.LLMModelTitle &&
		m.LLMModelKeyword == req.LLMModelKeyword &&
		m.Provider == req.Provider &&
		m.UISortOrder == req.UISortOrder &&
		strPtrEqual(m.Description, req.Description)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
