package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/database"
	"github.com/vindlokaal/businessprofiles/backend/internal/application/services"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	"github.com/vindlokaal/businessprofiles/backend/pkg/config"
)

// One-shot audit runner. Audits a single business profile and prints the
// full result as JSON, useful for checking a profile from the command line
// without going through the API.
func main() {
	var skipSnapshot bool
	flag.BoolVar(&skipSnapshot, "dry-run", false, "evaluate without recording a score snapshot")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: audit [-dry-run] <business-id>")
	}
	businessID := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pgClient.Close()

	businessRepo := database.NewBusinessAdapter(pgClient)
	snapshotRepo := database.NewScoreSnapshotAdapter(pgClient)

	auditService := services.NewAuditService(businessRepo, snapshotRepo, cfg.Audit.HistoryLimit)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var result *entities.AuditResult
	if skipSnapshot {
		result, err = auditService.Preview(ctx, businessID)
	} else {
		result, err = auditService.Run(ctx, businessID)
	}
	if err != nil {
		log.Fatalf("Audit failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}
