// Command demo-data regenerates the built-in demo pilot's logbook and
// stats bundle, replacing whatever the database currently holds.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"flightsite/internal/config"
	"flightsite/internal/demo"
	"flightsite/internal/logger"
	"flightsite/internal/server"
	"flightsite/internal/stats"
	"flightsite/internal/store"
)

func main() {
	target := flag.Int("flights", demo.DefaultTargetFlights, "number of demo flights to generate")
	seed := flag.Int64("seed", 0, "random seed (0 uses the configured seed)")
	flag.Parse()

	ctx := context.Background()

	godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("demo-data")

	if *seed == 0 {
		*seed = cfg.DemoSeed
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database", err, logger.Fields{"path": cfg.DBPath})
	}
	defer st.Close()

	pilot, err := st.UpsertPilot(ctx, server.DemoHandle, "Demo Pilot",
		"Fictional airline pilot flying a hub-and-spoke schedule out of **KSLC**.")
	if err != nil {
		log.Fatal("Failed to upsert demo pilot", err)
	}

	now := time.Now().UTC()
	flights := demo.NewGenerator(*seed).Generate(now, *target)
	if err := st.ReplaceFlights(ctx, pilot.ID, flights); err != nil {
		log.Fatal("Failed to store demo flights", err)
	}
	if err := st.SaveBundle(ctx, pilot.ID, stats.BuildStatsBundle(flights, now)); err != nil {
		log.Fatal("Failed to store demo stats bundle", err)
	}

	log.Info("Demo logbook regenerated", logger.Fields{
		"flights": len(flights),
		"seed":    *seed,
	})
}
