package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/storefront-graph/internal/data/graph"
	"github.com/yungbote/storefront-graph/internal/ingest"
	"github.com/yungbote/storefront-graph/internal/platform/envutil"
	"github.com/yungbote/storefront-graph/internal/platform/logger"
	"github.com/yungbote/storefront-graph/internal/platform/neo4jdb"
	"github.com/yungbote/storefront-graph/internal/source"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	manifest, err := source.LoadManifest(envutil.String("INGEST_MANIFEST", "ingest.yaml"))
	if err != nil {
		log.Fatal("manifest load failed", "error", err)
	}

	cfg := neo4jdb.FromEnv()
	if cfg.URI == "" {
		log.Fatal("NEO4J_URI is required")
	}
	if manifest.Database != "" {
		cfg.Database = manifest.Database
	}

	// Database creation runs against the system database.
	sysCfg := cfg
	sysCfg.Database = "system"
	sysClient, err := neo4jdb.Connect(ctx, sysCfg, log)
	if err != nil {
		log.Fatal("neo4j system connect failed", "error", err)
	}
	if err := sysClient.EnsureDatabase(ctx, cfg.Database); err != nil {
		log.Warn("database creation failed (continuing)", "database", cfg.Database, "error", err)
	}
	_ = sysClient.Close(ctx)

	// A freshly created database may take a moment to accept sessions.
	client, err := neo4jdb.ConnectWithRetry(ctx, cfg, log,
		envutil.Int("NEO4J_CONNECT_ATTEMPTS", 5),
		time.Duration(envutil.Int("NEO4J_CONNECT_WAIT_SECONDS", 5))*time.Second,
	)
	if err != nil {
		log.Fatal("neo4j connect failed", "database", cfg.Database, "error", err)
	}
	defer client.Close(ctx)

	batch, err := manifest.Load(log)
	if err != nil {
		log.Fatal("source load failed", "error", err)
	}

	store := graph.NewCommerceStore(client, log)
	store.EnsureSchema(ctx)

	report, runErr := ingest.New(store, log).IngestAll(ctx, batch)
	for _, family := range ingest.Families {
		fr := report.Family(family)
		log.Info("family result", "family", string(family), "succeeded", fr.Succeeded, "failed", fr.Failed)
		for _, f := range fr.Failures {
			log.Warn("failed record", "family", string(family), "record_id", f.RecordID, "reason", f.Reason)
		}
	}
	if runErr != nil {
		log.Error("ingestion aborted", "run_id", report.RunID.String(), "error", runErr)
		os.Exit(1)
	}
}
