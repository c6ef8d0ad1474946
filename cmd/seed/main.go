// Command seed populates a Plateful backend with sample restaurant menus.
// Items that already exist are skipped, so the command is safe to rerun.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/oliviarmunoz/plateful-go"
	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/auth"
	"github.com/oliviarmunoz/plateful-go/auth/redisstore"
	"github.com/oliviarmunoz/plateful-go/internal/platform/config"
	"github.com/oliviarmunoz/plateful-go/internal/platform/logging"
	"github.com/oliviarmunoz/plateful-go/internal/platform/retry"
)

var seedPolicy = retry.Policy{
	MaxAttempts:    3,
	InitialBackoff: 500 * time.Millisecond,
	OnRetry: func(attempt int, err error, backoff time.Duration) {
		slog.Warn("Retrying menu item", "attempt", attempt, "backoff", backoff, "error", err)
	},
}

// classifySeedError retries transport-level failures only. Backend answers,
// duplicates included, are final.
func classifySeedError(err error) retry.Action {
	switch apierr.KindOf(err) {
	case apierr.KindNetwork, apierr.KindTimeout:
		return retry.Retry
	default:
		return retry.Stop
	}
}

func main() {
	var (
		dryRun = flag.Bool("dry-run", false, "Log what would be added without calling the backend")
		delay  = flag.Duration("delay", 100*time.Millisecond, "Pause between calls")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	var tokens auth.Store
	if cfg.RedisURL != "" {
		store, err := redisstore.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer store.Close()
		tokens = store
	}

	client, err := plateful.New(ctx, plateful.Config{
		BaseURL: cfg.APIBase,
		Timeout: cfg.Timeout,
		Scheme:  cfg.Scheme,
		Tokens:  tokens,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	slog.Info("Populating restaurant menus", "restaurants", len(seedRestaurants), "base_url", cfg.APIBase, "dry_run", *dryRun)

	var added, skipped, failed int
	for _, restaurant := range seedRestaurants {
		slog.Info("Processing restaurant", "restaurant", restaurant.Name, "items", len(restaurant.Items))

		for _, item := range restaurant.Items {
			if *dryRun {
				slog.Info("Would add menu item", "restaurant", restaurant.Name, "name", item.Name, "price", item.Price)
				continue
			}

			_, err := retry.Do(ctx, seedPolicy, classifySeedError, func() (string, error) {
				return client.Menu.AddMenuItem(ctx, restaurant.Name, item.Name, item.Description, item.Price)
			})
			switch {
			case err == nil:
				added++
				slog.Debug("Added menu item", "restaurant", restaurant.Name, "name", item.Name)
			case apierr.IsDuplicate(err):
				skipped++
				slog.Debug("Menu item already exists", "restaurant", restaurant.Name, "name", item.Name)
			default:
				failed++
				slog.Error("Failed to add menu item", "restaurant", restaurant.Name, "name", item.Name, "error", err)
			}

			time.Sleep(*delay)
		}
	}

	slog.Info("Population complete", "added", added, "skipped", skipped, "failed", failed)
	if failed > 0 {
		log.Fatalf("%d menu items failed to seed", failed)
	}
}
