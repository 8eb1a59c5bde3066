package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config del servicio. Todo viene de env vars (ver README de despliegue).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Storage de registros: memory (dev), postgres, sqlite.
	DBDriver   string `env:"DB_DRIVER" envDefault:"memory"`
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"animals.db"`

	Blob BlobConfig
	Auth AuthConfig
	Log  LogConfig

	// Tracing opt-in: vacío = sin exporter.
	OTELEndpoint string `env:"OTEL_ENDPOINT"`
}

type BlobConfig struct {
	Driver string `env:"BLOB_DRIVER" envDefault:"memory"`

	// Base pública para construir URLs de descarga. En memory se sirve desde /files.
	PublicBaseURL string `env:"BLOB_PUBLIC_BASE_URL"`

	S3Bucket    string `env:"BLOB_S3_BUCKET"`
	S3Region    string `env:"BLOB_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"BLOB_S3_ENDPOINT"`
	S3PathStyle bool   `env:"BLOB_S3_PATH_STYLE" envDefault:"false"`

	// Opcionales; vacíos = cadena default de credenciales AWS.
	S3AccessKeyID     string `env:"BLOB_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"BLOB_S3_SECRET_ACCESS_KEY"`
}

type AuthConfig struct {
	// dev: header X-Debug-User-ID; local: JWT propio; identity: IAM externo.
	Mode string `env:"AUTH_MODE" envDefault:"dev"`

	JWTSecret string        `env:"AUTH_JWT_SECRET"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"12h"`

	IdentityBaseURL string        `env:"IDENTITY_BASE_URL"`
	IdentityAPIKey  string        `env:"IDENTITY_API_KEY"`
	IdentityTimeout time.Duration `env:"IDENTITY_TIMEOUT" envDefault:"5s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME" envDefault:"barangay-animal-tracking"`
}

// Load parsea env y valida combinaciones mínimas.
func Load() (Config, error) {
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
	switch strings.ToLower(c.DBDriver) {
	case "memory", "sqlite":
	case "postgres":
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch strings.ToLower(c.Blob.Driver) {
	case "memory":
	case "s3":
		if strings.TrimSpace(c.Blob.S3Bucket) == "" {
			return fmt.Errorf("BLOB_S3_BUCKET required for s3 driver")
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.Blob.Driver)
	}

	switch strings.ToLower(c.Auth.Mode) {
	case "dev":
	case "local":
		if strings.TrimSpace(c.Auth.JWTSecret) == "" {
			return fmt.Errorf("AUTH_JWT_SECRET required for local auth")
		}
	case "identity":
		if strings.TrimSpace(c.Auth.IdentityBaseURL) == "" || strings.TrimSpace(c.Auth.IdentityAPIKey) == "" {
			return fmt.Errorf("IDENTITY_BASE_URL and IDENTITY_API_KEY required for identity auth")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}

	return nil
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if p == "" {
		p = "8080"
	}
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}
