package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/multimind/internal/catalog"
	"github.com/davidbz/multimind/internal/config"
	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/httpserver"
	"github.com/davidbz/multimind/internal/httpserver/middleware"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/provider/alibaba"
	"github.com/davidbz/multimind/internal/provider/google"
	"github.com/davidbz/multimind/internal/provider/openrouter"
	"github.com/davidbz/multimind/internal/provider/registry"
	"github.com/davidbz/multimind/internal/relay"
	"github.com/davidbz/multimind/internal/routing"
	"github.com/davidbz/multimind/internal/store/redis"
)

func main() {
	container := buildContainer()

	err := container.Invoke(run)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run serves until SIGINT/SIGTERM, then drains in-flight streams and
// pending session writes.
func run(
	server *httpserver.Server,
	streamRelay *relay.Relay,
	client *goredis.Client,
	logger *zap.Logger,
	cfg *config.ServerConfig,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() { _ = logger.Sync() }()

	if err := client.Ping(ctx).Err(); err != nil {
		// Chats still stream; persistence failures are logged per request.
		logger.Warn("redis unreachable, chat history is unavailable", zap.Error(err))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	streamRelay.Wait()

	if err := client.Close(); err != nil {
		logger.Warn("failed to close redis client", zap.Error(err))
	}

	logger.Info("shutdown complete")
	return nil
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(_ *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus()
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Model Registry
	if err := container.Provide(func(cfg *catalog.Config, _ *zap.Logger) (domain.ModelRegistry, error) {
		return catalog.Load(cfg)
	}); err != nil {
		log.Fatalf("Failed to provide model catalog: %v", err)
	}

	// Provider Adapters
	if err := container.Provide(func(cfg *google.Config, _ *zap.Logger) *google.Adapter {
		return google.NewAdapter(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide Google adapter: %v", err)
	}
	if err := container.Provide(func(cfg *openrouter.Config, _ *zap.Logger) *openrouter.Adapter {
		return openrouter.NewAdapter(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenRouter adapter: %v", err)
	}
	if err := container.Provide(func(cfg *alibaba.Config, _ *zap.Logger) *alibaba.Adapter {
		return alibaba.NewAdapter(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide Alibaba adapter: %v", err)
	}

	// Adapter Registry. Every adapter is registered even without credentials;
	// it then fails each request with ErrProviderAuth.
	if err := container.Provide(func(
		googleAdapter *google.Adapter,
		openrouterAdapter *openrouter.Adapter,
		alibabaAdapter *alibaba.Adapter,
	) (domain.AdapterRegistry, error) {
		ctx := context.Background()
		reg := registry.NewRegistry()

		for _, adapter := range []domain.Adapter{googleAdapter, openrouterAdapter, alibabaAdapter} {
			if err := reg.Register(ctx, adapter); err != nil {
				return nil, fmt.Errorf("failed to register %s adapter: %w", adapter.Provider(), err)
			}
		}

		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide adapter registry: %v", err)
	}

	// Completion Router
	if err := container.Provide(func(
		models domain.ModelRegistry,
		adapters domain.AdapterRegistry,
	) domain.CompletionRouter {
		return routing.NewRouter(models, adapters)
	}); err != nil {
		log.Fatalf("Failed to provide router: %v", err)
	}

	// Session Store
	if err := container.Provide(redis.NewClient); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(redis.NewStore, dig.As(new(domain.SessionStore), new(domain.ChatHistory))); err != nil {
		log.Fatalf("Failed to provide session store: %v", err)
	}

	// Stream Relay
	if err := container.Provide(relay.NewRelay); err != nil {
		log.Fatalf("Failed to provide relay: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

