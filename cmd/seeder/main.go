// Command seeder loads the CSV dataset into the databases: players into
// Postgres and match history into ClickHouse. With -api it instead posts a
// sample of recent results to a running server's ingest endpoint.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/config"
	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/models"
	"github.com/courtside/tennis-predictor/internal/store"
)

var (
	apiURL    = flag.String("api", "", "Post the last -n matches to this server instead of writing to the databases")
	lastN     = flag.Int("n", 50, "Matches to post with -api")
	batchSize = flag.Int("batch", 5000, "ClickHouse insert batch size")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load config", "error", err)
	}

	ctx := context.Background()
	dataset := store.NewDataset(cfg.DataDir)

	if *apiURL != "" {
		if err := postMatches(ctx, dataset, *apiURL, cfg.IngestToken, *lastN); err != nil {
			log.Fatalw("Seeding through API failed", "error", err)
		}
		return
	}

	if cfg.PostgresURL == "" && cfg.ClickHouseURL == "" {
		log.Fatal("Nothing to seed: set POSTGRES_URL and/or CLICKHOUSE_URL")
	}

	if cfg.PostgresURL != "" {
		if err := seedPlayers(ctx, dataset, cfg.PostgresURL, log); err != nil {
			log.Fatalw("Seeding players failed", "error", err)
		}
	}
	if cfg.ClickHouseURL != "" {
		if err := seedMatches(ctx, dataset, cfg.ClickHouseURL, *batchSize, log); err != nil {
			log.Fatalw("Seeding matches failed", "error", err)
		}
	}
}

func seedPlayers(ctx context.Context, dataset *store.Dataset, url string, log *zap.SugaredLogger) error {
	pg, err := store.OpenPostgres(ctx, url)
	if err != nil {
		return err
	}
	defer pg.Close()

	players := store.NewPlayerStore(pg)
	if err := players.Migrate(ctx); err != nil {
		return err
	}

	list, err := dataset.ReadPlayers(ctx)
	if err != nil {
		return err
	}
	inserted, err := players.UpsertPlayers(ctx, list)
	if err != nil {
		return err
	}

	atp, _ := players.CountByTour(ctx, models.TourATP)
	wta, _ := players.CountByTour(ctx, models.TourWTA)
	log.Infow("Players seeded", "read", len(list), "inserted", inserted, "atp", atp, "wta", wta)
	return nil
}

func seedMatches(ctx context.Context, dataset *store.Dataset, url string, batch int, log *zap.SugaredLogger) error {
	ch, err := store.OpenClickHouse(ctx, url)
	if err != nil {
		return err
	}
	defer ch.Close()

	matches := store.NewMatchStore(ch)
	if err := matches.Migrate(ctx); err != nil {
		return err
	}
	if n, err := matches.Count(ctx); err == nil && n > 0 {
		log.Infow("Match table already populated, skipping", "rows", n)
		return nil
	}

	list, err := dataset.Matches(ctx)
	if err != nil {
		return err
	}
	if batch <= 0 {
		batch = len(list)
	}
	for start := 0; start < len(list); start += batch {
		end := min(start+batch, len(list))
		if err := matches.InsertMatches(ctx, list[start:end]); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end, err)
		}
		log.Infow("Inserted batch", "from", start, "to", end)
	}

	log.Infow("Matches seeded", "rows", len(list), "mainDraw", len(logic.FilterMainDraw(list)))
	return nil
}

// postMatches sends the most recent n matches as one JSON array.
func postMatches(ctx context.Context, dataset *store.Dataset, url, token string, n int) error {
	list, err := dataset.Matches(ctx)
	if err != nil {
		return err
	}
	if n > 0 && len(list) > n {
		list = list[len(list)-n:]
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal matches: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/api/v1/matches", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Ingest-Token", token)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(body))
	if resp.StatusCode != http.StatusAccepted {
		os.Exit(1)
	}
	return nil
}
