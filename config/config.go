// Package config handles loading and parsing application configuration.
// Values come from a YAML file (optional) overridden by environment
// variables; a local .env file is loaded first when present.
// File: config/config.go
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure. Every field maps to a key
// in the YAML file and can be overridden by the corresponding
// environment variable.
type Config struct {
	// Env controls log verbosity and gin mode. Valid: "dev", "staging", "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the filesystem path to the SQLite database file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"campus.db"`

	// Addr is the TCP address the HTTP server listens on.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:":8080"`

	// AdminPassword is the shared moderation secret. It is bcrypt-hashed
	// at startup and only the hash is kept in memory afterwards.
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"AURORA"`

	// SessionSecret signs the session cookie store.
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"campus-secret"`

	// ApplicationURL is the public base URL, used in invite QR codes.
	ApplicationURL string `yaml:"application_url" env:"APPLICATION_URL" env-default:"http://localhost:8080"`

	// MetricsEnabled toggles CloudWatch metric publishing.
	MetricsEnabled bool `yaml:"metrics_enabled" env:"METRICS_ENABLED" env-default:"false"`
}

// MustLoad reads, validates, and returns the application config.
// Functions prefixed with "Must" are allowed to fatal on failure;
// if this returns, the config is valid.
func MustLoad() *Config {
	// .env is optional; ignore the error when the file is absent.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		flagPath := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flagPath
	}

	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err.Error())
		}
		return &cfg
	}

	// no file given: environment variables and defaults only
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err.Error())
	}
	return &cfg
}
