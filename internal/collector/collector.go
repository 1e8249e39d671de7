// Package collector samples current conditions for a fixed city list and
// appends them to the training dataset. It is the online half of the model
// training pipeline; training itself runs elsewhere against the CSV.
package collector

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/time/rate"

	"weatherguide/internal/store"
	"weatherguide/internal/weather"
)

// Collector fetches and stores one observation per configured city.
type Collector struct {
	provider weather.Provider
	store    *store.DatasetStore
	limiter  *rate.Limiter
}

// New creates a Collector. requestsPerSec throttles outbound provider calls;
// values <= 0 fall back to one request per second, matching the provider's
// free-tier expectations.
func New(provider weather.Provider, st *store.DatasetStore, requestsPerSec float64) *Collector {
	if requestsPerSec <= 0 {
		requestsPerSec = 1
	}
	return &Collector{
		provider: provider,
		store:    st,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

// Run collects one observation for every city. Unknown cities and transient
// fetch failures are logged and skipped; only dataset write errors or a
// cancelled context abort the run.
func (c *Collector) Run(ctx context.Context, cities []string) error {
	for _, city := range cities {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		obs, err := c.provider.Current(ctx, city)
		if err != nil {
			if errors.Is(err, weather.ErrCityNotFound) {
				log.Printf("collector: city not found: %s", city)
				continue
			}
			log.Printf("collector: fetch failed for %s: %v", city, err)
			continue
		}

		if err := c.store.Append(obs, time.Now()); err != nil {
			return err
		}
		log.Printf("collector: saved weather for %s, %s", obs.City, obs.Country)
	}
	return nil
}
