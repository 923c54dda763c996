package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds all runtime configuration. Values come from defaults, then an
// optional config.yaml, then PATHSALA_-prefixed environment variables, with
// later sources winning.
type Config struct {
	Environment               string        `koanf:"environment"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	JWTSecret                 string        `koanf:"jwt_secret"`
}

const envPrefix = "PATHSALA_"

func New() (*Config, error) {
	return NewFromFile("config.yaml")
}

// NewFromFile builds a Config from the given yaml file path. A missing file is
// not an error; environment variables alone are enough to run.
func NewFromFile(path string) (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		Environment:               "development",
		Hostname:                  hostname,
		ServerHost:                "127.0.0.1",
		ServerPort:                4000,
		DatabaseFilePath:          "./tmp/pathsala.sqlite",
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseMaxRetries:        5,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		JWTSecret:                 "pathsala-dev-secret",
	}

	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	switch cfg.Environment {
	case "development", "test", "production":
	default:
		return nil, errors.Errorf("unknown environment %q", cfg.Environment)
	}

	if cfg.Environment == "test" {
		cfg.DatabaseFilePath = ":memory:"
	}
	if cfg.Environment == "production" && cfg.JWTSecret == "pathsala-dev-secret" {
		return nil, errors.New("jwt_secret must be set in production")
	}

	return cfg, nil
}
