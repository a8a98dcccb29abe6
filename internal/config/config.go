package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/multimind/internal/catalog"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/provider/alibaba"
	"github.com/davidbz/multimind/internal/provider/google"
	"github.com/davidbz/multimind/internal/provider/openrouter"
	"github.com/davidbz/multimind/internal/relay"
	"github.com/davidbz/multimind/internal/store/redis"
)

// Config represents the chat gateway configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        observability.LogConfig
	Catalog    catalog.Config
	Google     google.Config
	OpenRouter openrouter.Config
	Alibaba    alibaba.Config
	Redis      redis.Config
	Relay      relay.Config
}

// ServerConfig contains HTTP server settings. WriteTimeout bounds a whole
// response, streams included; 0 disables it.
type ServerConfig struct {
	Port            int   `env:"SERVER_PORT"             envDefault:"5000"`
	ReadTimeout     int   `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int   `env:"SERVER_WRITE_TIMEOUT"    envDefault:"300"`
	ShutdownTimeout int   `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15"`
	MaxBodyBytes    int64 `env:"SERVER_MAX_BODY_BYTES"   envDefault:"52428800"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server     *ServerConfig
	CORS       *CORSConfig
	Log        *observability.LogConfig
	Catalog    *catalog.Config
	Google     *google.Config
	OpenRouter *openrouter.Config
	Alibaba    *alibaba.Config
	Redis      *redis.Config
	Relay      *relay.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		Log:        &cfg.Log,
		Catalog:    &cfg.Catalog,
		Google:     &cfg.Google,
		OpenRouter: &cfg.OpenRouter,
		Alibaba:    &cfg.Alibaba,
		Redis:      &cfg.Redis,
		Relay:      &cfg.Relay,
	}
}
