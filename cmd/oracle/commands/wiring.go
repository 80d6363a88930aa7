package commands

import (
	"context"
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/marketdata"
	"github.com/wonny/oracle/internal/multibagger"
	"github.com/wonny/oracle/internal/scanner"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/config"
	"github.com/wonny/oracle/pkg/database"
	"github.com/wonny/oracle/pkg/httputil"
	"github.com/wonny/oracle/pkg/logger"
	"github.com/wonny/oracle/pkg/redis"
)

// app bundles the wired components every command starts from.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	strategy *strategyconfig.Config
	provider contracts.MarketDataProvider
	universe *marketdata.IDXUniverse
	hunter   *multibagger.Hunter
	scanner  *scanner.Scanner

	db    *database.DB
	repo  *scanner.Repository
	redis *redis.Client
}

// buildApp loads configuration and wires the scan pipeline. The
// database connection is optional unless a command needs persistence.
func buildApp(needDB bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	strategy := strategyconfig.Default()
	strategy.Scan.MinScore = cfg.Scan.MinScore
	if err := strategy.Validate(); err != nil {
		return nil, fmt.Errorf("strategy config: %w", err)
	}

	httpClient := httputil.New(log, cfg.Provider.Timeout).
		WithRateLimit(cfg.Provider.RequestRate, cfg.Provider.RequestBurst)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	cache := redis.NewCache(redisClient, "oracle")

	yahoo := marketdata.NewYahooWithClient(httpClient, cfg.Provider.BaseURL, log)
	provider := marketdata.NewCached(yahoo, cache, cfg.Scan.SnapshotTTL, log)
	universe := marketdata.NewIDXUniverse(httpClient, cfg.Provider.UniverseURL, log)

	hunter := multibagger.NewHunter(strategy, log)
	sc := scanner.New(provider, hunter, cfg.Scan.LookbackDays, log)

	a := &app{
		cfg:      cfg,
		log:      log,
		strategy: strategy,
		provider: provider,
		universe: universe,
		hunter:   hunter,
		scanner:  sc,
		redis:    redisClient,
	}

	if needDB || cfg.Database.URL != "" {
		if cfg.Database.URL == "" {
			if needDB {
				return nil, fmt.Errorf("DATABASE_URL is required for this command")
			}
		} else {
			db, err := database.New(cfg)
			if err != nil {
				if needDB {
					a.Close()
					return nil, fmt.Errorf("connect to database: %w", err)
				}
				log.WithError(err).Warn("database unavailable, persistence disabled")
			} else {
				a.db = db
				a.repo = scanner.NewRepository(db, log)
			}
		}
	}

	return a, nil
}

// resultRepo returns the repository as the persistence interface, nil
// when no database is wired.
func (a *app) resultRepo() contracts.ResultRepository {
	if a.repo == nil {
		return nil
	}
	return a.repo
}

func (a *app) initSchema(ctx context.Context) error {
	if a.repo == nil {
		return nil
	}
	return a.repo.InitSchema(ctx)
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}
