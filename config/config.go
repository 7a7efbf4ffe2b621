package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends understood by Config.StoreBackend.
const (
	BackendSanity = "sanity"
	BackendMongo  = "mongo"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	StoreBackend string        `env:"STORE_BACKEND" envDefault:"sanity"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`

	Sanity SanityConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Admin  AdminConfig
}

type SanityConfig struct {
	ProjectID  string `env:"SANITY_PROJECT_ID"`
	Dataset    string `env:"SANITY_DATASET" envDefault:"production"`
	APIVersion string `env:"SANITY_API_VERSION" envDefault:"v2025-01-18"`
	Token      string `env:"SANITY_TOKEN"`
	// APIHost overrides https://<project>.api.sanity.io.
	APIHost string `env:"SANITY_API_HOST"`
	CDNHost string `env:"SANITY_CDN_HOST" envDefault:"https://cdn.sanity.io"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI"`
	Database string `env:"MONGODB_DATABASE" envDefault:"0xmart"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	SnapshotTTL time.Duration `env:"REDIS_SNAPSHOT_TTL" envDefault:"24h"`
}

type AdminConfig struct {
	Email        string `env:"ADMIN_EMAIL" envDefault:"humaaftab_4@yahoo.com"`
	Password     string `env:"ADMIN_PASSWORD" envDefault:"huma"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"change-me-session-secret-32bytes"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"12h"`
	// SessionSecure marks the cookie Secure; enable behind TLS.
	SessionSecure bool          `env:"SESSION_SECURE" envDefault:"false"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("config: no .env file loaded, using process environment")
	}
}

// Load parses the process environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSanity:
		if c.Sanity.ProjectID == "" {
			return errors.New("config: SANITY_PROJECT_ID is required for the sanity backend")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return errors.New("config: MONGODB_URI is required for the mongo backend")
		}
	default:
		return fmt.Errorf("config: unsupported store backend: %s", c.StoreBackend)
	}
	if c.Admin.Email == "" {
		return errors.New("config: ADMIN_EMAIL must not be empty")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("config: one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if len(c.Admin.SessionSecret) < 32 {
		return errors.New("config: SESSION_SECRET must be at least 32 bytes")
	}
	return nil
}

// SanityAPIHost returns the configured API host or the project default.
func (c *Config) SanityAPIHost() string {
	if c.Sanity.APIHost != "" {
		return c.Sanity.APIHost
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.Sanity.ProjectID)
}
