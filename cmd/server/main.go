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

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/FAfrancis99/atm-server/internal/api"
	"github.com/FAfrancis99/atm-server/internal/common"
	"github.com/FAfrancis99/atm-server/internal/config"
	"github.com/FAfrancis99/atm-server/internal/ledger"
	"github.com/FAfrancis99/atm-server/internal/money"
)

func main() {
	addressFlag := flag.String("address", "", "Listen address (overrides SERVER_ADDRESS)")
	flag.Parse()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	address := cfg.Server.Address
	if *addressFlag != "" {
		address = *addressFlag
	}

	led := ledger.New(nil)
	for number, opening := range cfg.Seed.Accounts {
		if err := led.CreateAccount(number, opening); err != nil {
			logger.Fatal("Failed to seed account",
				zap.String("account_number", number),
				zap.Error(err))
		}
		logger.Info("Seeded account",
			zap.String("account_number", number),
			zap.String("balance", money.FormatCents(opening)))
	}

	server := api.NewServer(address, api.NewHandler(led))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting ATM server", zap.String("address", address))
		errCh <- server.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}

	logger.Info("Server stopped")
}
