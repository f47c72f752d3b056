// Package config handles loading and parsing application configuration.
//
// Two configurations live here because two binaries share this module:
//
//   - Config      — for the store service (birthdays-api). Loaded with
//     MustLoad: the YAML file is mandatory and missing values abort
//     startup. Better to crash at boot than to run half-configured.
//
//   - ClientConfig — for the CLI (birthdays). The config file is
//     optional; sensible defaults plus environment variables are enough
//     for a first run, so LoadClient never demands a file.
//
// Both use cleanenv, which reads the YAML file AND any env:"..." tagged
// fields from the environment, with env values taking precedence.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration for the store service.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the service refuses to start if that value
// is missing.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite .db file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// HTTPServer is embedded (not a pointer) so its fields are
	// accessible directly on Config: cfg.HTTPServer.Addr.
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the service config.
//
// The config path is taken from (in priority order):
//  1. The CONFIG_PATH environment variable
//  2. The --config command-line flag
//
// The name "MustLoad" follows the Go convention: "Must" functions are
// allowed to exit on failure. If this returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}

// ClientConfig is the configuration for the birthdays CLI.
//
// Unlike the service config nothing here is required: the defaults point
// at a locally running store, and every value can be overridden from the
// environment or a YAML file. Fingerprint, when set, replaces the
// computed device identity — useful for carrying one identity across
// machines.
type ClientConfig struct {
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// APIURL is the base URL of the record store, without a trailing
	// slash. The /api/birthdays paths are appended to it.
	APIURL string `yaml:"api_url" env:"BIRTHDAYS_API_URL" env-default:"http://localhost:8082"`

	// Notifications is the permission gate for desktop notifications.
	// When false, reminder matches are still computed and printed but
	// no platform notification is requested.
	Notifications bool `yaml:"notifications" env:"BIRTHDAYS_NOTIFICATIONS" env-default:"true"`

	// Fingerprint overrides the computed device identity when non-empty.
	Fingerprint string `yaml:"fingerprint" env:"BIRTHDAYS_FINGERPRINT"`
}

// LoadClient returns the CLI configuration.
//
// If path is non-empty the file must exist and parse; otherwise only
// defaults and environment variables are consulted. Errors are returned
// (not fatal) so the CLI can surface them as a normal command failure.
func LoadClient(path string) (*ClientConfig, error) {
	var cfg ClientConfig

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
