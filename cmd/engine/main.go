package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobsheet-engine/internal/config"
	"jobsheet-engine/internal/journal"
	"jobsheet-engine/internal/notify"
	"jobsheet-engine/internal/pipeline"
	"jobsheet-engine/internal/scheduler"
	"jobsheet-engine/internal/scrape"
	"jobsheet-engine/internal/secrets"
	"jobsheet-engine/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("JOBSHEET_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would race the daily run.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance holds %s", lock.Path())
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, w := range validation.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", userCfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jnl, err := journal.Open(filepath.Join(dataDir, "jobsheet.db"))
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	defer jnl.Close()

	credsJSON, err := secrets.ServiceAccountJSON(cfg)
	if err != nil {
		log.Fatalf("credentials: %v", err)
	}
	store, err := sheets.NewClient(ctx, sheets.Config{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		Worksheet:     cfg.Sheets.Worksheet,
	}, credsJSON)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	client := scrape.NewClient(timeout, cfg.HTTP.RequestsPerSecond)
	portals := buildPortals(cfg, client)

	notifier := buildNotifier(cfg)
	pipe := pipeline.New(store, cfg.Skills, timeout)

	run := func(ctx context.Context) error {
		started := time.Now()
		rep, runErr := pipe.Run(ctx, portals)
		finished := time.Now()

		if err := jnl.Record(ctx, started, finished, rep, runErr); err != nil {
			log.Printf("[journal] record failed: %v", err)
		}
		if err := notifier.Notify(rep, runErr); err != nil {
			log.Printf("[notify] failed: %v", err)
		}
		return runErr
	}

	sched, err := scheduler.New("ingest", cfg.Schedule.At, cfg.Schedule.RunOnStart, run)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	log.Printf("engine started (portals=%d schedule=%s data=%s)", len(portals), cfg.Schedule.At, dataDir)
	if err := sched.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func buildPortals(cfg config.Config, client *scrape.Client) []pipeline.Portal {
	out := make([]pipeline.Portal, 0, len(cfg.Portals))
	for _, p := range cfg.Portals {
		out = append(out, pipeline.Portal{
			Name:      p.Name,
			Source:    pipeline.PortalPage{Client: client, URL: p.URL},
			Selectors: scrape.Selectors{
				Listing:     p.Selectors.Listing,
				Title:       p.Selectors.Title,
				Company:     p.Selectors.Company,
				Location:    p.Selectors.Location,
				Description: p.Selectors.Description,
				PostDate:    p.Selectors.PostDate,
				PaySalary:   p.Selectors.PaySalary,
			},
		})
	}
	return out
}

func buildNotifier(cfg config.Config) notify.Notifier {
	if cfg.Notify.Type == "telegram" {
		n, err := notify.NewTelegramNotifier(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID)
		if err != nil {
			log.Printf("[notify] telegram init failed, falling back to log: %v", err)
			return notify.LogNotifier{}
		}
		return n
	}
	return notify.LogNotifier{}
}
