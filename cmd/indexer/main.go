package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/database"
	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/search"
	"github.com/vindlokaal/businessprofiles/backend/internal/audit"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/typesense"
	"github.com/vindlokaal/businessprofiles/backend/pkg/config"
)

const indexBatchSize = 100

func main() {
	var intervalFlag string
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatalf("Invalid interval %q: %v", intervalValue, err)
		}
		if interval <= 0 {
			log.Fatalf("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx); err != nil {
			log.Printf("Reindex failed: %v", err)
		}

		if interval <= 0 {
			break
		}

		log.Printf("Reindex complete. Next run in %s.", interval)

		select {
		case <-ctx.Done():
			log.Println("Indexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

// indexOnce audits every active profile and pushes it into Typesense with
// its fresh quality score. Snapshots are not recorded here; the score in the
// index is a ranking signal, not part of the audit history.
func indexOnce(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	businessRepo := database.NewBusinessAdapter(pgClient)
	searchRepo := search.NewTypesenseAdapter(tsClient)

	if err := searchRepo.InitSchema(ctx); err != nil {
		return err
	}

	indexed := 0
	failed := 0
	offset := 0
	for {
		businesses, err := businessRepo.ListActive(ctx, indexBatchSize, offset)
		if err != nil {
			return err
		}
		if len(businesses) == 0 {
			break
		}

		for _, row := range businesses {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			// ListActive returns shallow rows; the audit needs the full profile.
			business, err := businessRepo.GetByID(ctx, row.ID)
			if err != nil {
				log.Printf("Failed to load business %s: %v", row.ID, err)
				failed++
				continue
			}

			result := audit.Evaluate(business)
			if err := searchRepo.Index(ctx, business, result.OverallScore); err != nil {
				log.Printf("Failed to index business %s: %v", business.ID, err)
				failed++
				continue
			}
			indexed++
		}

		offset += len(businesses)
	}

	log.Printf("Indexed %d businesses (%d failed)", indexed, failed)
	return nil
}
