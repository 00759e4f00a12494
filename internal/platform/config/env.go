package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the tunables the intake engine reads from its host
// environment.
type Config struct {
	// ReviewDelay is the simulated document-review duration before the
	// pending approval transition fires.
	ReviewDelay time.Duration `env:"INTAKE_REVIEW_DELAY" envDefault:"45s"`
	// RetentionWindow is how long an application stays out of the archival
	// sweep after creation.
	RetentionWindow time.Duration `env:"INTAKE_RETENTION_WINDOW" envDefault:"17520h"`
	// SnapshotBackend selects the snapshot store implementation.
	SnapshotBackend string `env:"INTAKE_SNAPSHOT_BACKEND" envDefault:"bbolt"`
	// DBPath locates the on-disk snapshot database for the bbolt and sqlite
	// backends.
	DBPath string `env:"INTAKE_DB_PATH" envDefault:"data/intake.db"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the intake configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
