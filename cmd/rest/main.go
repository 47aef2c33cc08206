package main

import (
	"log"

	"doc-wizard-be/internal/bootstrap"
	"doc-wizard-be/internal/config"
	"doc-wizard-be/internal/model"
	"doc-wizard-be/internal/server"
	"doc-wizard-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewSqliteDB(cfg.Storage.Path)
	if err != nil {
		log.Panicf("Unable to open storage at %s: %v", cfg.Storage.Path, err)
	}
	if err := gormDB.AutoMigrate(&model.SessionSnapshot{}, &model.SavedDocument{}); err != nil {
		log.Panicf("Unable to migrate storage schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
