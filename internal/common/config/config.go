package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Kafka struct {
		Enabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers      []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
		Topic        string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"lottery.notifications"`
		RetryMax     int      `env:"KAFKA_RETRY_MAX" envDefault:"3"`
		RequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" envDefault:"1"`
	}

	Lottery struct {
		// How long a selected entrant has to confirm or decline.
		ResponseWindow time.Duration `env:"RESPONSE_WINDOW" envDefault:"48h"`
		// Bounded wait for the per-event lock before returning Busy.
		LockWait time.Duration `env:"LOCK_WAIT" envDefault:"3s"`
		// Interval between timeout sweeps for overdue selections.
		SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	}
}

func Load() (*Config, error) {
	// Missing .env is fine; in production variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
