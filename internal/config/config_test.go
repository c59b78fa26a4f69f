package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FAfrancis99/atm-server/internal/money"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PRELOAD_ACCOUNTS", "")
	t.Setenv("ACCOUNTS_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("Expected default address :8080, got %s", cfg.Server.Address)
	}
	if got := cfg.Seed.Accounts["1001"]; got != 100000 {
		t.Errorf("Expected default 1001 balance 100000, got %d", got)
	}
	if got := cfg.Seed.Accounts["1002"]; got != 25050 {
		t.Errorf("Expected default 1002 balance 25050, got %d", got)
	}
}

func TestLoad_PreloadAccounts(t *testing.T) {
	t.Setenv("PRELOAD_ACCOUNTS", `{"1001":"1000.00","1002":250.5,"1003":"0.00"}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]money.Cents{"1001": 100000, "1002": 25050, "1003": 0}
	if len(cfg.Seed.Accounts) != len(want) {
		t.Fatalf("Expected %d accounts, got %d", len(want), len(cfg.Seed.Accounts))
	}
	for number, cents := range want {
		if got := cfg.Seed.Accounts[number]; got != cents {
			t.Errorf("Account %s: got %d, want %d", number, got, cents)
		}
	}
}

func TestLoad_PreloadAccountsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"invalid json", `{"1001":`},
		{"non-numeric balance", `{"1001":"abc"}`},
		{"negative balance", `{"1001":"-5.00"}`},
		{"wrong value type", `{"1001":["1.00"]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PRELOAD_ACCOUNTS", tc.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Expected startup error, got nil")
			}
			if !strings.Contains(err.Error(), "PRELOAD_ACCOUNTS") {
				t.Errorf("Error should mention PRELOAD_ACCOUNTS: %v", err)
			}
		})
	}
}

func TestLoad_AccountsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	content := "\"1001\": \"1000.00\"\n\"2001\": \"42.07\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write accounts file: %v", err)
	}

	t.Setenv("PRELOAD_ACCOUNTS", "")
	t.Setenv("ACCOUNTS_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Seed.Accounts["1001"]; got != 100000 {
		t.Errorf("Account 1001: got %d, want 100000", got)
	}
	if got := cfg.Seed.Accounts["2001"]; got != 4207 {
		t.Errorf("Account 2001: got %d, want 4207", got)
	}
}

func TestLoad_AccountsFileMissing(t *testing.T) {
	t.Setenv("PRELOAD_ACCOUNTS", "")
	t.Setenv("ACCOUNTS_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for missing accounts file, got nil")
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	if err := os.WriteFile(path, []byte("\"9001\": \"1.00\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write accounts file: %v", err)
	}

	t.Setenv("PRELOAD_ACCOUNTS", `{"1001":"5.00"}`)
	t.Setenv("ACCOUNTS_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, ok := cfg.Seed.Accounts["9001"]; ok {
		t.Error("ACCOUNTS_FILE should be ignored when PRELOAD_ACCOUNTS is set")
	}
	if got := cfg.Seed.Accounts["1001"]; got != 500 {
		t.Errorf("Account 1001: got %d, want 500", got)
	}
}

func TestLoad_ServerSettings(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("Expected address :9090, got %s", cfg.Server.Address)
	}
	if cfg.Server.ShutdownTimeout.Seconds() != 3 {
		t.Errorf("Expected 3s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid duration, got nil")
	}
}
