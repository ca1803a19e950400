package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	TokenTTL         time.Duration `env:"TOKEN_TTL,          default=24h"`
	SessionTTL       time.Duration `env:"SESSION_TTL,        default=24h"`
	RefreshThreshold time.Duration `env:"REFRESH_THRESHOLD,  default=30m"`
	RedirectCooldown time.Duration `env:"REDIRECT_COOLDOWN,  default=2s"`
	AuditWorkers     int           `env:"AUDIT_WORKERS,      default=4"`

	UpstreamBaseURL string `env:"UPSTREAM_BASE_URL, default=http://localhost:9000/api"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=orientation_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
