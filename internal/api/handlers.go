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

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FAfrancis99/atm-server/internal/ledger"
	"github.com/FAfrancis99/atm-server/internal/models"
	"github.com/FAfrancis99/atm-server/internal/money"
)

// Machine-checkable error categories returned alongside the human message.
const (
	categoryNotFound          = "account_not_found"
	categoryInsufficientFunds = "insufficient_funds"
	categoryInvalidAmount     = "invalid_amount"
	categoryInternal          = "internal_error"
)

// Handler translates HTTP requests into ledger calls and ledger results
// into wire responses. All balance arithmetic lives in the ledger; the
// handler only parses, formats, and maps errors.
type Handler struct {
	ledger *ledger.Ledger
}

func NewHandler(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l}
}

// Health reports service status and the known account numbers.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Accounts: h.ledger.AccountNumbers(),
	})
}

// Root returns service info with a formatted balance snapshot.
func (h *Handler) Root(c *gin.Context) {
	snapshot := h.ledger.Snapshot()
	samples := make(map[string]string, len(snapshot))
	for number, balance := range snapshot {
		samples[number] = money.FormatCents(balance)
	}
	c.JSON(http.StatusOK, models.RootResponse{
		Message:        "Mini ATM Server",
		SampleAccounts: samples,
	})
}

// GetBalance returns the current balance for an account.
func (h *Handler) GetBalance(c *gin.Context) {
	number := c.Param("number")

	balance, err := h.ledger.GetBalance(number)
	if err != nil {
		h.writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BalanceResponse{
		AccountNumber: number,
		Balance:       money.FormatCents(balance),
	})
}

// Deposit adds a positive decimal amount to an account.
func (h *Handler) Deposit(c *gin.Context) {
	number := c.Param("number")

	amount, ok := h.bindAmount(c)
	if !ok {
		return
	}

	newBalance, err := h.ledger.Deposit(number, amount)
	if err != nil {
		h.writeLedgerError(c, err)
		return
	}

	zap.L().Info("Deposit processed",
		zap.String("account_number", number),
		zap.Int64("amount_cents", int64(amount)),
		zap.String("new_balance", money.FormatCents(newBalance)),
		zap.String("request_id", c.GetString(requestIDKey)))

	c.JSON(http.StatusOK, models.BalanceResponse{
		AccountNumber: number,
		Balance:       money.FormatCents(newBalance),
	})
}

// Withdraw subtracts a positive decimal amount from an account. Overdraw
// attempts return 400 with a category distinct from not-found.
func (h *Handler) Withdraw(c *gin.Context) {
	number := c.Param("number")

	amount, ok := h.bindAmount(c)
	if !ok {
		return
	}

	newBalance, err := h.ledger.Withdraw(number, amount)
	if err != nil {
		h.writeLedgerError(c, err)
		return
	}

	zap.L().Info("Withdrawal processed",
		zap.String("account_number", number),
		zap.Int64("amount_cents", int64(amount)),
		zap.String("new_balance", money.FormatCents(newBalance)),
		zap.String("request_id", c.GetString(requestIDKey)))

	c.JSON(http.StatusOK, models.BalanceResponse{
		AccountNumber: number,
		Balance:       money.FormatCents(newBalance),
	})
}

// bindAmount decodes the request body and parses the amount into cents.
// On failure it writes a 422 validation response and returns ok=false.
func (h *Handler) bindAmount(c *gin.Context) (money.Cents, bool) {
	var req models.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, http.StatusUnprocessableEntity, categoryInvalidAmount,
			"request body must be JSON with an \"amount\" field")
		return 0, false
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		h.writeError(c, http.StatusUnprocessableEntity, categoryInvalidAmount, err.Error())
		return 0, false
	}
	return amount, true
}

// writeLedgerError maps ledger sentinel errors to wire responses.
func (h *Handler) writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		h.writeError(c, http.StatusNotFound, categoryNotFound, "account not found")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		h.writeError(c, http.StatusBadRequest, categoryInsufficientFunds, "insufficient funds")
	case errors.Is(err, ledger.ErrInvalidAmount):
		h.writeError(c, http.StatusUnprocessableEntity, categoryInvalidAmount, err.Error())
	default:
		zap.L().Error("Unexpected ledger error",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		h.writeError(c, http.StatusInternalServerError, categoryInternal, "internal error")
	}
}

func (h *Handler) writeError(c *gin.Context, status int, category, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   category,
		Message: message,
	})
}
