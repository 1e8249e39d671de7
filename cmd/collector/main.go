package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"weatherguide/internal/collector"
	"weatherguide/internal/config"
	"weatherguide/internal/scheduler"
	"weatherguide/internal/store"
	"weatherguide/internal/suggest"
	"weatherguide/internal/weather/providers"
)

func main() {
	once := flag.Bool("once", false, "collect a single pass and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.OpenWeatherAPIKey == "" {
		log.Fatal("OPENWEATHER_API_KEY is not set")
	}

	cities := cfg.CollectorCities
	if len(cities) == 0 {
		cities = suggest.CollectorCities()
	}

	provider := providers.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey, "")
	provider.SetTimeout(cfg.HTTPTimeout)
	dataset := store.NewDatasetStore(cfg.DatasetPath)
	coll := collector.New(provider, dataset, cfg.CollectorRateLimit)

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		if err := coll.Run(ctx, cities); err != nil {
			log.Fatalf("collection run failed: %v", err)
		}
		log.Printf("collection complete; dataset at %s", dataset.Path())
		return
	}

	sched := scheduler.New(cities, cfg.CollectorInterval, coll)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
}
