package ledger

import (
	"sort"
	"sync"

	"github.com/FAfrancis99/atm-server/internal/money"
)

// account pairs a balance with the mutex that guards it. The map stores
// pointers, so the guard and the balance it protects are always the same
// heap object no matter how many goroutines hold a reference.
type account struct {
	mu      sync.Mutex
	balance money.Cents
}

// Ledger is an in-memory account ledger safe for concurrent use. Each
// account carries its own guard so operations on distinct accounts never
// block each other; the structural mutex protects only the map itself.
//
// Lock order is always structural guard before account guard, never the
// reverse. Deposit and Withdraw release the structural read lock before
// taking the account guard; the account pointer stays valid because
// accounts are never removed.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

// New creates a ledger pre-populated with the given balances. Pass nil for
// an empty ledger. Initial balances are trusted; seeding paths that handle
// untrusted input should use CreateAccount instead.
func New(initial map[string]money.Cents) *Ledger {
	accounts := make(map[string]*account, len(initial))
	for number, balance := range initial {
		accounts[number] = &account{balance: balance}
	}
	return &Ledger{accounts: accounts}
}

// lookup fetches the account under the structural read lock.
func (l *Ledger) lookup(number string) (*account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.accounts[number]
	return acct, ok
}

// GetBalance returns the current balance for the account. The read happens
// under the account guard so it can never observe a half-applied mutation.
func (l *Ledger) GetBalance(number string) (money.Cents, error) {
	acct, ok := l.lookup(number)
	if !ok {
		return 0, ErrAccountNotFound
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	return acct.balance, nil
}

// Deposit adds amount to the account balance atomically and returns the new
// balance. Amounts are validated upstream by the codec; a non-positive
// amount reaching this point is rejected with ErrInvalidAmount.
func (l *Ledger) Deposit(number string, amount money.Cents) (money.Cents, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	acct, ok := l.lookup(number)
	if !ok {
		return 0, ErrAccountNotFound
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	acct.balance += amount
	return acct.balance, nil
}

// Withdraw subtracts amount from the account balance atomically and returns
// the new balance. The funds check and the subtraction happen inside the
// same critical section: either both take effect or neither does, and the
// balance can never go negative even under concurrent withdrawals.
func (l *Ledger) Withdraw(number string, amount money.Cents) (money.Cents, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	acct, ok := l.lookup(number)
	if !ok {
		return 0, ErrAccountNotFound
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	if amount > acct.balance {
		return 0, ErrInsufficientFunds
	}
	acct.balance -= amount
	return acct.balance, nil
}

// CreateAccount inserts a new account with the given opening balance. It is
// used by the seeding path and is intentionally not exposed over HTTP.
func (l *Ledger) CreateAccount(number string, opening money.Cents) error {
	if opening < 0 {
		return ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[number]; exists {
		return ErrAccountAlreadyExists
	}
	l.accounts[number] = &account{balance: opening}
	return nil
}

// AccountNumbers returns a sorted snapshot of the known account numbers.
// Only the structural lock is taken, so this never contends with in-flight
// deposits or withdrawals.
func (l *Ledger) AccountNumbers() []string {
	l.mu.RLock()
	numbers := make([]string, 0, len(l.accounts))
	for number := range l.accounts {
		numbers = append(numbers, number)
	}
	l.mu.RUnlock()
	sort.Strings(numbers)
	return numbers
}

// Snapshot returns a point-in-time copy of every balance, for diagnostics.
// Account guards are taken one at a time, never nested, so concurrent
// mutations are delayed at most briefly.
func (l *Ledger) Snapshot() map[string]money.Cents {
	l.mu.RLock()
	accounts := make(map[string]*account, len(l.accounts))
	for number, acct := range l.accounts {
		accounts[number] = acct
	}
	l.mu.RUnlock()

	balances := make(map[string]money.Cents, len(accounts))
	for number, acct := range accounts {
		acct.mu.Lock()
		balances[number] = acct.balance
		acct.mu.Unlock()
	}
	return balances
}
