package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers.
const (
	DriverJSONFile = "jsonfile"
	DriverS3       = "s3"
)

type Config struct {
	Issuer    string `env:"JOURNAL_ISSUER" envDefault:"journal"`
	JWTSecret string `env:"JOURNAL_JWT_SECRET"` // Optional: a random secret is generated when unset

	StoreDriver    string        `env:"JOURNAL_STORE_DRIVER" envDefault:"jsonfile"` // jsonfile or s3
	StoreFile      string        `env:"JOURNAL_STORE_FILE" envDefault:"users.json"`
	StorageTimeout time.Duration `env:"JOURNAL_STORAGE_TIMEOUT" envDefault:"5s"`
	S3             S3Config      `envPrefix:"JOURNAL_S3_"`

	PepperFile string `env:"JOURNAL_PEPPER_FILE" envDefault:"pepper"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"5555"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// S3Config is only read when StoreDriver is "s3". Credentials fall back to
// the default AWS chain when AccessKey is empty.
type S3Config struct {
	Bucket       string `env:"BUCKET"`
	Key          string `env:"KEY" envDefault:"users.json"`
	Region       string `env:"REGION" envDefault:"us-east-1"`
	Endpoint     string `env:"ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	UsePathStyle bool   `env:"USE_PATH_STYLE"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverJSONFile:
		if c.StoreFile == "" {
			errs = append(errs, errors.New("JOURNAL_STORE_FILE must not be empty"))
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("JOURNAL_S3_BUCKET is required for the s3 driver"))
		}
		if c.S3.Key == "" {
			errs = append(errs, errors.New("JOURNAL_S3_KEY must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown JOURNAL_STORE_DRIVER %q", c.StoreDriver))
	}

	if c.StorageTimeout <= 0 {
		errs = append(errs, errors.New("JOURNAL_STORAGE_TIMEOUT must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}
