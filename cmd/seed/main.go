package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"aurorah/internal/config"
	"aurorah/internal/database"
	"aurorah/internal/domain/syscatalog"
)

func strPtr(s string) *string { return &s }

// Seeds the system catalogs. Safe to run repeatedly: entries go through
// the upsert service, so unchanged rows are left untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	svc := syscatalog.NewService(
		syscatalog.NewAgentRepository(db),
		syscatalog.NewModelRepository(db),
	)
	ctx := context.Background()

	agents := []syscatalog.UpsertAgentRequest{
		{
			AIAgentID:      "agent_translation_a1",
			AIAgentTitle:   "Translation Agent A1",
			AIAgentKeyword: "translation",
			UISortOrder:    "A0",
			Description:    strPtr("Default document translation agent"),
		},
		{
			AIAgentID:      "agent_translation_b1",
			AIAgentTitle:   "Translation Agent B1",
			AIAgentKeyword: "translation",
			UISortOrder:    "A1",
			Description:    strPtr("Second-pass translation agent"),
		},
		{
			AIAgentID:      "agent_proofreading_a1",
			AIAgentTitle:   "Proofreading Agent A1",
			AIAgentKeyword: "proofreading",
			UISortOrder:    "B0",
			Description:    strPtr("Reviews translated segments"),
		},
	}
	for _, req := range agents {
		outcome, err := svc.UpsertAgent(ctx, req)
		if err != nil {
			log.Fatalf("seed agent %s: %v", req.AIAgentID, err)
		}
		log.Printf("agent %s: %s", req.AIAgentID, outcomeLabel(outcome))
	}

	models := []syscatalog.UpsertModelRequest{
		{
			LLMModelID:      "gpt-4o",
			LLMModelTitle:   "GPT-4o",
			LLMModelKeyword: "general",
			Provider:        "openai",
			UISortOrder:     "A0",
		},
		{
			LLMModelID:      "gpt-4o-mini",
			LLMModelTitle:   "GPT-4o mini",
			LLMModelKeyword: "fast",
			Provider:        "openai",
			UISortOrder:     "A1",
		},
		{
			LLMModelID:      "claude-3-5-sonnet",
			LLMModelTitle:   "Claude 3.5 Sonnet",
			LLMModelKeyword: "general",
			Provider:        "anthropic",
			UISortOrder:     "B0",
		},
		{
			LLMModelID:      "gemini-1.5-pro",
			LLMModelTitle:   "Gemini 1.5 Pro",
			LLMModelKeyword: "general",
			Provider:        "google",
			UISortOrder:     "C0",
		},
	}
	for _, req := range models {
		outcome, err := svc.UpsertModel(ctx, req)
		if err != nil {
			log.Fatalf("seed model %s: %v", req.LLMModelID, err)
		}
		log.Printf("model %s: %s", req.LLMModelID, outcomeLabel(outcome))
	}

	log.Println("Seed complete.")
}

func outcomeLabel(o syscatalog.UpsertOutcome) string {
	switch o {
	case syscatalog.UpsertCreated:
		return "created"
	case syscatalog.UpsertUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}
