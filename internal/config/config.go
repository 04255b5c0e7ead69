// Package config loads application configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// devSecret is the signing secret used when none is configured. It is only
// acceptable for local development; Load refuses it in production.
const devSecret = "dev_secret_do_not_deploy"

// defaultUsers is the built-in credential seed for local development.
const defaultUsers = "cherie:password123,booboo:password123"

// Config holds runtime settings for the chat server.
type Config struct {
	// Addr is the HTTP listen address (e.g. :3000).
	Addr string `mapstructure:"CHAT_ADDR"`
	// DatabasePath is the SQLite database file path.
	DatabasePath string `mapstructure:"CHAT_DB_PATH"`
	// JWTSecret is the HMAC secret for signing session tokens (HS256).
	// Required in production; development falls back to an insecure default.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `mapstructure:"TOKEN_TTL"`
	// Env is the application environment ("development" or "production").
	Env string `mapstructure:"APP_ENV"`
	// UsersSpec is the fixed credential seed as comma-separated user:password pairs.
	UsersSpec string `mapstructure:"CHAT_USERS"`
	// StaticDir optionally points at a frontend bundle to serve; empty disables it.
	StaticDir string `mapstructure:"STATIC_DIR"`
}

// Credential is one seeded username/password pair.
type Credential struct {
	Username string
	Password string
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Missing .env is ignored. A production deployment without an
// explicit JWT_SECRET is a hard failure.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetDefault("CHAT_ADDR", ":3000")
	v.SetDefault("CHAT_DB_PATH", "chat.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CHAT_USERS", defaultUsers)
	v.SetDefault("STATIC_DIR", "")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		log.Println("WARNING: JWT_SECRET not set, using insecure development secret")
		cfg.JWTSecret = devSecret
	}

	if _, err := cfg.Users(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Users parses UsersSpec into the seeded credential list.
func (c *Config) Users() ([]Credential, error) {
	var creds []Credential
	for _, pair := range strings.Split(c.UsersSpec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		username, password, ok := strings.Cut(pair, ":")
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("invalid CHAT_USERS entry %q, want user:password", pair)
		}
		creds = append(creds, Credential{Username: username, Password: password})
	}
	if len(creds) == 0 {
		return nil, errors.New("CHAT_USERS must seed at least one user")
	}
	return creds, nil
}
