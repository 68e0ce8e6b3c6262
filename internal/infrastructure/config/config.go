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

	SessionTTL   time.Duration `env:"SESSION_TTL,   default=24h"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT, default=5s"`
	QueueWorkers int           `env:"QUEUE_WORKERS, default=4"`

	Admin    AdminConfig
	Throttle ThrottleConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// AdminConfig seeds the single built-in administrative account at startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@connectpro.com"`
	Password string `env:"ADMIN_PASSWORD"`
}

type ThrottleConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS,    default=5"`
	Window      time.Duration `env:"LOGIN_THROTTLE_WINDOW, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=connectpro"`
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
