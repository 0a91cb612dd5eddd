// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/next-trace/scg-conference-bus/adapters/nats"
	"github.com/next-trace/scg-conference-bus/adapters/rabbitmq"
	"github.com/next-trace/scg-conference-bus/metrics"
)

// Service is the full configuration of a conference service process.
type Service struct {
	Name        string `env:"SERVICE_NAME" envDefault:"conference-service"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"conference.db"`

	// Driver selects the broker transport: "rabbitmq" (default) or "nats".
	Driver string `env:"BROKER_DRIVER" envDefault:"rabbitmq"`

	Broker     rabbitmq.Config
	NATS       nats.Config
	Metrics    metrics.ServerConfig
	Validation Validation
}

// Validation configures both the serving side and outbound validation calls.
type Validation struct {
	Port        int           `env:"VALIDATION_PORT" envDefault:"50051"`
	CallTimeout time.Duration `env:"VALIDATION_CALL_TIMEOUT" envDefault:"3s"`
	Retries     int           `env:"VALIDATION_RETRIES" envDefault:"2"`
	SessionAddr string        `env:"SESSION_SERVICE_ADDR" envDefault:"localhost:50051"`
	SpeakerAddr string        `env:"SPEAKER_SERVICE_ADDR" envDefault:"localhost:50052"`
}

// Load parses the full service configuration from environment variables.
func Load() (Service, error) {
	var cfg Service
	if err := env.Parse(&cfg); err != nil {
		return Service{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
