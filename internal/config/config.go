// Package config reads process configuration from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config carries everything the server and mirror processes need. Defaults
// exist for every field; all are overridable via environment variables.
type Config struct {
	AdminUsername string
	AdminPassword string

	ListenAddr   string
	DataFile     string // ledger document path (primary)
	SnapshotFile string // replication snapshot path (primary)
	PostgresDSN  string // when set, the document store is postgres-backed
	KafkaBrokers []string

	PrimaryURL         string // mirror: base URL of the primary
	MirrorSnapshotFile string // mirror: locally cached snapshot path
	SyncInterval       time.Duration
	SyncTimeout        time.Duration
}

// Load reads configuration, applying defaults for anything unset.
func Load() (Config, error) {
	// Missing .env is fine; env vars alone are a complete configuration.
	_ = godotenv.Load()

	cfg := Config{
		AdminUsername:      getenv("ADMIN_USERNAME", "mywebhosting"),
		AdminPassword:      getenv("ADMIN_PASSWORD", "password123"),
		ListenAddr:         getenv("LISTEN_ADDR", ":3000"),
		DataFile:           getenv("DATA_FILE", "db.json"),
		SnapshotFile:       getenv("SNAPSHOT_FILE", "users.json"),
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		PrimaryURL:         getenv("PRIMARY_URL", "http://localhost:3000"),
		MirrorSnapshotFile: getenv("MIRROR_SNAPSHOT_FILE", "users.json"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	var err error
	if cfg.SyncInterval, err = duration("SYNC_INTERVAL", 20*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SyncTimeout, err = duration("SYNC_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return d, nil
}
