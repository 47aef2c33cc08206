package bootstrap

import (
	"log"

	"doc-wizard-be/internal/config"
	"doc-wizard-be/internal/controller"
	"doc-wizard-be/internal/pkg/logger"
	"doc-wizard-be/internal/repository/implementation"
	"doc-wizard-be/internal/repository/memory"
	"doc-wizard-be/internal/service"
	"doc-wizard-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GenerateController controller.IGenerateController
	WizardController   controller.IWizardController
	DocumentController controller.IDocumentController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg),
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 2. Repositories
	activeSessionRepo := memory.NewSessionRepository()
	snapshotRepo := implementation.NewSessionSnapshotRepository(db)
	documentRepo := implementation.NewSavedDocumentRepository(db)

	// 3. Services
	generationService := service.NewGenerationService(llmProvider, cfg.Ai.LLMModel, sysLogger)
	sessionService := service.NewSessionService(activeSessionRepo, snapshotRepo, sysLogger)
	wizardService := service.NewWizardService(sessionService, generationService, cfg.Wizard, sysLogger)
	documentService := service.NewDocumentService(documentRepo, sessionService, sysLogger)

	// 4. Controllers
	return &Container{
		GenerateController: controller.NewGenerateController(generationService),
		WizardController:   controller.NewWizardController(wizardService),
		DocumentController: controller.NewDocumentController(documentService),
		Logger:             sysLogger,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
