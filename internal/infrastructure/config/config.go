package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionKeyPrefix namespaces session keys in the persistent store.
	SessionKeyPrefix string `env:"SESSION_KEY_PREFIX, default=session:"`

	// DirectoryBackend selects the user directory: "memory" (seeded demo
	// accounts) or "mongo".
	DirectoryBackend string `env:"DIRECTORY_BACKEND, default=memory"`

	// SeedDemoAccounts controls whether the fixed demo identities are
	// inserted at startup.
	SeedDemoAccounts bool `env:"SEED_DEMO_ACCOUNTS, default=true"`

	// NotificationWorkers sizes the outbound notification dispatcher.
	NotificationWorkers int `env:"NOTIFICATION_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=coaching_platform"`
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
