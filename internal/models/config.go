package models

import (
	"time"

	"github.com/FAfrancis99/atm-server/internal/money"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig
	Seed   SeedConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Address         string
	ShutdownTimeout time.Duration
}

// SeedConfig holds the resolved initial account set, already parsed into
// minor units by the configuration loader.
type SeedConfig struct {
	Accounts map[string]money.Cents
}
