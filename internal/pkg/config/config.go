package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Timezone bounds business days for revenue attribution; it is the
	// restaurant's local zone, not UTC.
	Timezone string `env:"TIMEZONE, default=America/Bogota"`

	// EventWorkers is the number of sharded order-event workers.
	EventWorkers int `env:"EVENT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI string `env:"MONGO_URI, default=mongodb://localhost:27017"`

	// Database holds the operational collections: staff profiles, orders,
	// menu, movements, inventory.
	Database string `env:"MONGO_DB, default=backoffice"`

	// CredentialDatabase holds login identities only. It is separate because
	// the provisioning saga treats the two stores as independently failing
	// systems; nothing may assume a shared transaction between them.
	CredentialDatabase string `env:"MONGO_CREDENTIAL_DB, default=backoffice_identity"`
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
