package main

import (
	"context"
	"log"

	"tourism/internal/config"
	"tourism/internal/database"
	"tourism/internal/modules/audit"
	"tourism/internal/repository"
)

func main() {
	cfg := config.MustLoad()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := audit.NewService(repository.NewAuditRepository(db), log.Printf)

	deleted, err := svc.Cleanup(context.Background(), cfg.AuditRetention)
	if err != nil {
		log.Fatalf("audit cleanup failed: %v", err)
	}

	log.Printf("audit cleanup completed: deleted=%d retention=%s", deleted, cfg.AuditRetention)
}
