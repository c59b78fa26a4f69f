/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/FAfrancis99/atm-server/internal/models"
	"github.com/FAfrancis99/atm-server/internal/money"
)

// defaultAccounts seeds the ledger when no seed source is configured:
// 1001 -> 1000.00, 1002 -> 250.50.
var defaultAccounts = map[string]money.Cents{
	"1001": 100000,
	"1002": 25050,
}

func Load() (*models.Config, error) {
	shutdownTimeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	accounts, err := loadSeedAccounts()
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Server: models.ServerConfig{
			Address:         getEnvString("SERVER_ADDRESS", ":8080"),
			ShutdownTimeout: shutdownTimeout,
		},
		Seed: models.SeedConfig{
			Accounts: accounts,
		},
	}, nil
}

// loadSeedAccounts resolves the initial account set. PRELOAD_ACCOUNTS (JSON)
// wins over ACCOUNTS_FILE (YAML); with neither set, built-in defaults apply.
// A malformed entry is a startup error, never a silently skipped account.
func loadSeedAccounts() (map[string]money.Cents, error) {
	if env := os.Getenv("PRELOAD_ACCOUNTS"); env != "" {
		accounts, err := parsePreloadAccounts(env)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PRELOAD_ACCOUNTS: %w", err)
		}
		return accounts, nil
	}

	if path := os.Getenv("ACCOUNTS_FILE"); path != "" {
		accounts, err := parseAccountsFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load accounts file %s: %w", path, err)
		}
		return accounts, nil
	}

	return defaultAccounts, nil
}

// parsePreloadAccounts parses a JSON object of account number -> balance.
// Balances may be strings ("1000.00") or bare numbers (250.5); both go
// through the same codec so precision rules match.
func parsePreloadAccounts(raw string) (map[string]money.Cents, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var entries map[string]any
	if err := decoder.Decode(&entries); err != nil {
		return nil, err
	}

	accounts := make(map[string]money.Cents, len(entries))
	for number, value := range entries {
		var balanceStr string
		switch v := value.(type) {
		case string:
			balanceStr = v
		case json.Number:
			balanceStr = v.String()
		default:
			return nil, fmt.Errorf("account %s: balance must be string or number", number)
		}

		balance, err := money.ParseBalance(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", number, err)
		}
		accounts[number] = balance
	}
	return accounts, nil
}

// parseAccountsFile reads a YAML mapping of account number -> balance string.
func parseAccountsFile(path string) (map[string]money.Cents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	accounts := make(map[string]money.Cents, len(entries))
	for number, balanceStr := range entries {
		balance, err := money.ParseBalance(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", number, err)
		}
		accounts[number] = balance
	}
	return accounts, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}
