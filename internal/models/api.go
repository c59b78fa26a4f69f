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

package models

// AmountRequest is the body of deposit and withdraw requests. The amount is
// a decimal string (e.g. "12.34"); validation happens in the money codec,
// not here.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// BalanceResponse reports an account's balance as a two-decimal string.
type BalanceResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
}

// ErrorResponse carries a machine-checkable category plus a human-readable
// message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse reports service status and the known account numbers.
type HealthResponse struct {
	Status   string   `json:"status"`
	Accounts []string `json:"accounts"`
}

// RootResponse is the service info returned at "/".
type RootResponse struct {
	Message        string            `json:"message"`
	SampleAccounts map[string]string `json:"sample_accounts"`
}
