// Command airport-index downloads the OurAirports dataset and saves a
// compact JSON lookup of airport coordinates for the import pipeline.
package main

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"

	"flightsite/internal/airports"
	"flightsite/internal/config"
	"flightsite/internal/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("airport-index")

	log.Info("Fetching airport dataset", logger.Fields{"url": cfg.AirportsCSVURL})

	fetcher := airports.NewFetcher(resty.New())
	index, err := fetcher.Fetch(ctx, cfg.AirportsCSVURL)
	if err != nil {
		log.Fatal("Failed to fetch airport dataset", err)
	}

	if err := index.Save(cfg.AirportIndexPath); err != nil {
		log.Fatal("Failed to save airport index", err, logger.Fields{"path": cfg.AirportIndexPath})
	}

	log.Info("Airport index written", logger.Fields{
		"path":     cfg.AirportIndexPath,
		"airports": index.Len(),
	})
}
