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

	Mongo     MongoConfig
	Redis     RedisConfig
	SMS       SMSConfig
	Lifecycle LifecycleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=appointment_app"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMSConfig struct {
	WebhookURL string `env:"SMS_WEBHOOK_URL"`
	Token      string `env:"SMS_WEBHOOK_TOKEN"`
	Workers    int    `env:"SMS_WORKERS, default=4"`
}

type LifecycleConfig struct {
	// AllowEarlyComplete lets staff mark appointments completed before the
	// scheduled date has elapsed.
	AllowEarlyComplete bool `env:"ALLOW_EARLY_COMPLETE, default=false"`
	// BroadcastBuffer is the per-subscriber event buffer size.
	BroadcastBuffer int `env:"BROADCAST_BUFFER, default=16"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
