package preset

import "github.com/google/uuid"

type CreatePresetRequest struct {
	PrincipalID         uuid.UUID `json:"principal_id" binding:"required"`
	Description         string    `json:"description" binding:"required,max=128"`
	LLMModelID          string    `json:"llm_model_id" binding:"required,max=64"`
	LLMModelTemperature int       `json:"llm_model_temperature" binding:"omitempty,gte=0,lte=200"`
	AIAgentID           string    `json:"ai_agent_id" binding:"omitempty,max=64"`
	TranslationMemory   *string   `json:"translation_memory" binding:"omitempty,max=256"`
	TranslationRole     *string   `json:"translation_role"`
	TranslationRule     *string   `json:"translation_rule"`
	TargetLanguage      string    `json:"target_language" binding:"required,max=128"`
	TargetCountry       string    `json:"target_country" binding:"required,max=128"`
	TargetCity          *string   `json:"target_city" binding:"omitempty,max=128"`
	TaskType            string    `json:"task_type" binding:"omitempty,max=32"`
	Audience            string    `json:"audience" binding:"omitempty,max=128"`
	Purpose             string    `json:"purpose"`
}

// UpdatePresetRequest carries partial changes; nil fields stay unchanged.
type UpdatePresetRequest struct {
	Description         *string `json:"description" binding:"omitempty,max=128"`
	LLMModelID          *string `json:"llm_model_id" binding:"omitempty,max=64"`
	LLMModelTemperature *int    `json:"llm_model_temperature" binding:"omitempty,gte=0,lte=200"`
	AIAgentID           *string `json:"ai_agent_id" binding:"omitempty,max=64"`
	TranslationMemory   *string `json:"translation_memory" binding:"omitempty,max=256"`
	TranslationRole     *string `json:"translation_role"`
	TranslationRule     *string `json:"translation_rule"`
	TargetLanguage      *string `json:"target_language" binding:"omitempty,max=128"`
	TargetCountry       *string `json:"target_country" binding:"omitempty,max=128"`
	TargetCity          *string `json:"target_city" binding:"omitempty,max=128"`
	TaskType            *string `json:"task_type" binding:"omitempty,max=32"`
	Audience            *string `json:"audience" binding:"omitempty,max=128"`
	Purpose             *string `json:"purpose"`
}
