package database

import (
	"fmt"

	"gorm.io/gorm"

	"aurorah/internal/domain/acl"
	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/history"
	"aurorah/internal/domain/original"
	"aurorah/internal/domain/preset"
	"aurorah/internal/domain/proofreading"
	"aurorah/internal/domain/syscatalog"
	"aurorah/internal/domain/task"
	"aurorah/internal/domain/translation"
)

// Migrate creates or updates the whole au_* schema. Single source of truth
// for the model list; cmd/api, cmd/seed and the test suites all go through
// here.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&filenode.FileNode{},
		&acl.FileACL{},
		&preset.FilePreset{},
		&original.Original{},
		&translation.Translation{},
		&proofreading.Proofreading{},
		&task.Task{},
		&history.EditHistory{},
		&history.Checkpoint{},
		&syscatalog.AIAgent{},
		&syscatalog.LLMModel{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}
