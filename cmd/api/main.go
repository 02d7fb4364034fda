package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"aurorah/internal/config"
	"aurorah/internal/database"
	"aurorah/internal/domain/acl"
	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/history"
	"aurorah/internal/domain/original"
	"aurorah/internal/domain/preset"
	"aurorah/internal/domain/proofreading"
	"aurorah/internal/domain/syscatalog"
	"aurorah/internal/domain/task"
	"aurorah/internal/domain/translation"
	"aurorah/internal/middleware"
	"aurorah/internal/pkg/clock"
	"aurorah/internal/pkg/fetch"
)

func main() {
	// .env is optional, deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clk := clock.RealClock{}
	ids := clock.UUIDv7Generator{}

	fileRepo := filenode.NewRepository(db)
	aclRepo := acl.NewRepository(db)
	presetRepo := preset.NewRepository(db)
	originalRepo := original.NewRepository(db)
	translationRepo := translation.NewRepository(db)
	proofreadingRepo := proofreading.NewRepository(db)
	taskRepo := task.NewRepository(db)
	historyRepo := history.NewRepository(db)
	agentRepo := syscatalog.NewAgentRepository(db)
	modelRepo := syscatalog.NewModelRepository(db)

	fileHandler := filenode.NewHandler(filenode.NewService(fileRepo, ids))
	aclHandler := acl.NewHandler(acl.NewService(aclRepo, fileRepo))
	presetHandler := preset.NewHandler(preset.NewService(presetRepo, ids))
	originalHandler := original.NewHandler(original.NewService(originalRepo, fileRepo, ids))
	translationHandler := translation.NewHandler(translation.NewService(translationRepo, fileRepo, presetRepo, ids))
	proofreadingHandler := proofreading.NewHandler(proofreading.NewService(proofreadingRepo, fileRepo, ids))

	taskService := task.NewService(
		taskRepo,
		fileRepo,
		presetRepo,
		translationRepo,
		proofreadingRepo,
		fetch.NewClient(cfg.FetchTimeout),
		ids,
	)
	taskHandler := task.NewHandler(taskService)

	historyService := history.NewService(historyRepo, fileRepo, clk, ids, cfg.CheckpointWindow)
	historyHandler := history.NewHandler(historyService)

	catalogHandler := syscatalog.NewHandler(syscatalog.NewService(agentRepo, modelRepo))

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		filenode.RegisterRoutes(v1, fileHandler)
		acl.RegisterRoutes(v1, aclHandler)
		preset.RegisterRoutes(v1, presetHandler)
		original.RegisterRoutes(v1, originalHandler)
		translation.RegisterRoutes(v1, translationHandler)
		proofreading.RegisterRoutes(v1, proofreadingHandler)
		task.RegisterRoutes(v1, taskHandler)
		history.RegisterRoutes(v1, historyHandler)
		syscatalog.RegisterRoutes(v1, catalogHandler)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
