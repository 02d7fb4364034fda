package syscatalog

import (
	"time"

	"gorm.io/gorm"
)

// DefaultSortOrder is the ui_sort_order assigned when a caller sends none.
const DefaultSortOrder = "A0"

// AIAgent is a catalog row describing a prompt persona the UI can offer.
// Keyed by a natural string id such as "agent_translation_a1".
type AIAgent struct {
	AIAgentID      string         `gorm:"column:ai_agent_id;size:64;primaryKey" json:"ai_agent_id"`
	AIAgentTitle   string         `gorm:"column:ai_agent_title;size:64;index" json:"ai_agent_title"`
	AIAgentKeyword string         `gorm:"column:ai_agent_keyword;size:64" json:"ai_agent_keyword"`
	UISortOrder    string         `gorm:"column:ui_sort_order;size:64;default:A0" json:"ui_sort_order"`
	Description    *string        `gorm:"column:description;size:512" json:"description"`
	CreatedAt      time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (AIAgent) TableName() string { return "au_system_ai_agents" }

// LLMModel is a catalog row describing a model configuration the UI can
// offer, keyed by a natural string id such as "llm_gpt4o_mini".
type LLMModel struct {
	LLMModelID      string         `gorm:"column:llm_model_id;size:64;primaryKey" json:"llm_model_id"`
	LLMModelTitle   string         `gorm:"column:llm_model_title;size:64;index" json:"llm_model_title"`
	LLMModelKeyword string         `gorm:"column:llm_model_keyword;size:64" json:"llm_model_keyword"`
	Provider        string         `gorm:"column:provider;size:64" json:"provider"`
	UISortOrder     string         `gorm:"column:ui_sort_order;size:64;default:A0" json:"ui_sort_order"`
	Description     *string        `gorm:"column:description;size:512" json:"description"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LLMModel) TableName() string { return "au_system_llm_models" }
