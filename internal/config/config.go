// Package config defines the process configuration and how it is loaded.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/sharesplitter/internal/storage/backend"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// StorageBackend selects where the ledger records live.
	StorageBackend string `koanf:"storage_backend" validate:"oneof=memory sqlite redis"`

	SQLitePath string `koanf:"sqlite_path" validate:"required_if=StorageBackend sqlite"`
	RedisAddr  string `koanf:"redis_addr" validate:"required_if=StorageBackend redis"`
	RedisDB    int    `koanf:"redis_db" validate:"gte=0"`

	// KeyPrefix namespaces the participants and bills records.
	KeyPrefix string `koanf:"key_prefix" validate:"required"`

	MetricsEnabled bool `koanf:"metrics_enabled"`

	// Currency is the ISO 4217 code used when formatting amounts.
	Currency string `koanf:"currency" validate:"len=3,alpha"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Addr:           ":8080",
		LogLevel:       "info",
		StorageBackend: string(backend.SQLiteBackend),
		SQLitePath:     "./data/sharesplit.db",
		RedisAddr:      "localhost:6379",
		RedisDB:        0,
		KeyPrefix:      "share-splitter",
		MetricsEnabled: true,
		Currency:       "USD",
	}
}

// Validate checks c and returns an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
}

// Storage returns the backend settings for the storage factory.
func (c *Config) Storage() backend.Config {
	return backend.Config{
		Type:       backend.ParseBackend(c.StorageBackend),
		SQLitePath: c.SQLitePath,
		RedisAddr:  c.RedisAddr,
		RedisDB:    c.RedisDB,
	}
}
