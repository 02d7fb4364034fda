package preset

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilePreset is a named translation configuration bundle owned by a
// principal. Translations snapshot the bundle as JSON when they are
// created, so editing a preset never rewrites history.
type FilePreset struct {
	FilePresetID        uuid.UUID      `gorm:"column:file_preset_id;type:uuid;primaryKey" json:"file_preset_id"`
	PrincipalID         uuid.UUID      `gorm:"column:principal_id;type:uuid;index" json:"principal_id"`
	Description         string         `gorm:"column:description;size:128" json:"description"`
	LLMModelID          string         `gorm:"column:llm_model_id;size:64" json:"llm_model_id"`
	LLMModelTemperature int            `gorm:"column:llm_model_temperature" json:"llm_model_temperature"`
	AIAgentID           string         `gorm:"column:ai_agent_id;size:64;default:agent_translation_a1" json:"ai_agent_id"`
	TranslationMemory   *string        `gorm:"column:translation_memory;size:256" json:"translation_memory"`
	TranslationRole     *string        `gorm:"column:translation_role" json:"translation_role"`
	TranslationRule     *string        `gorm:"column:translation_rule" json:"translation_rule"`
	TargetLanguage      string         `gorm:"column:target_language;size:128" json:"target_language"`
	TargetCountry       string         `gorm:"column:target_country;size:128" json:"target_country"`
	TargetCity          *string        `gorm:"column:target_city;size:128" json:"target_city"`
	TaskType            string         `gorm:"column:task_type;size:32;default:localization" json:"task_type"`
	Audience            string         `gorm:"column:audience;size:128;default:general" json:"audience"`
	Purpose             string         `gorm:"column:purpose" json:"purpose"`
	CreatedAt           time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (FilePreset) TableName() string { return "au_file_presets" }
