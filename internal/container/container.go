package container

import (
	"context"
	"fmt"

	"github.com/JuliusMoehring/shrinkify.app/internal/handlers"
	"github.com/JuliusMoehring/shrinkify.app/internal/health"
	"github.com/JuliusMoehring/shrinkify.app/internal/middleware"
	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/JuliusMoehring/shrinkify.app/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// Options holds the process configuration. A store must be configured: the
// Redis URI, or a Postgres DSN to use the relational adapter instead.
type Options struct {
	Port         int    `default:"3000" help:"Port to listen on"                                          short:"p"`
	RedisURI     string `help:"Redis connection URI, e.g. redis://localhost:6379"                         name:"redis-uri"`
	PostgresDSN  string `help:"PostgreSQL DSN; when set, records live in Postgres instead of Redis"       name:"postgres-dsn"`
	OriginLength int    `default:"8"    help:"Length of generated origins"`
}

// LoggerPackage provides the process-wide zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*zap.Logger, error) {
		return zap.NewProduction()
	})
}

// RedisPackage provides the Redis client built from the configured URI.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		opts, err := redis.ParseURL(options.RedisURI)
		if err != nil {
			return nil, fmt.Errorf("invalid redis uri: %w", err)
		}

		return redis.NewClient(opts), nil
	})
}

// PostgresPackage provides the pgx pool built from the configured DSN.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		pool, err := pgxpool.New(context.Background(), options.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("invalid postgres dsn: %w", err)
		}

		return pool, nil
	})
}

// StorePackage provides the record store, choosing the Postgres adapter when
// a DSN is configured and Redis otherwise.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shrink.Repository, error) {
		options := do.MustInvoke[*Options](i)

		if options.PostgresDSN != "" {
			pool := do.MustInvoke[*pgxpool.Pool](i)

			return store.NewPostgresStore(pool), nil
		}

		client := do.MustInvoke[*redis.Client](i)

		return store.NewRedisStore(client), nil
	})
}

// ShrinkPackage provides the shortening service.
func ShrinkPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shrink.Service, error) {
		options := do.MustInvoke[*Options](i)

		generate, err := shrink.NewOriginGenerator(options.OriginLength)
		if err != nil {
			return nil, fmt.Errorf("invalid origin length: %w", err)
		}

		repo := do.MustInvoke[shrink.Repository](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return shrink.NewService(repo, generate, logger), nil
	})
}

// HTTPPackage provides the router and the huma API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		router := chi.NewMux()
		router.Use(middleware.CORS)
		router.Use(middleware.RequestLogger(logger))

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		service := do.MustInvoke[*shrink.Service](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Shrinkify", "1.0.0"))

		handlers.RegisterRoutes(api, handlers.NewShrinkHandler(service, logger))

		var checker health.Checker
		if options.PostgresDSN != "" {
			checker = health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i))
		} else {
			checker = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
		}

		health.RegisterRoutes(api, health.NewHandler(checker))

		return api, nil
	})
}
