// Package wallet keeps the client's view of the user's balance. The local
// value is a cache of the backend's authoritative balance: deductions and
// additions apply instantly for UI feedback, and only an explicit Refresh
// re-syncs with the server.
package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/Afresh-Revolution/Knowrist/internal/logger"
	"github.com/Afresh-Revolution/Knowrist/internal/metrics"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// BalanceFetcher fetches the authoritative balance from the backend.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, token string) (float64, error)
}

type Service struct {
	mu      sync.Mutex
	balance float64

	fetcher     BalanceFetcher
	demoBalance float64
	authEnabled bool
}

func NewService(fetcher BalanceFetcher, demoBalance float64, authEnabled bool) *Service {
	return &Service{
		fetcher:     fetcher,
		demoBalance: demoBalance,
		authEnabled: authEnabled,
		balance:     demoBalance,
	}
}

// Establish sets the session's starting balance: the backend's value when
// auth is enabled and reachable, the demo balance otherwise.
func (s *Service) Establish(ctx context.Context, token string) float64 {
	if !s.authEnabled {
		logger.Debug("auth disabled, using demo balance")
		return s.set(s.demoBalance)
	}

	balance, err := s.fetcher.GetBalance(ctx, token)
	if err != nil {
		logger.Errorf("wallet fetch failed, falling back to demo balance: %v", err)
		return s.set(s.demoBalance)
	}
	return s.set(balance)
}

func (s *Service) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Deduct subtracts amount from the local balance. The balance never goes
// negative: a deduction larger than the balance is rejected outright.
func (s *Service) Deduct(amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.balance {
		metrics.WalletDeductionsTotal.WithLabelValues("rejected").Inc()
		return false
	}
	s.balance -= amount
	metrics.WalletDeductionsTotal.WithLabelValues("ok").Inc()
	return true
}

func (s *Service) Add(amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance += amount
}

// Refresh re-fetches the authoritative balance and replaces the local cache.
// On failure the local value is left untouched.
func (s *Service) Refresh(ctx context.Context, token string) (float64, error) {
	balance, err := s.fetcher.GetBalance(ctx, token)
	if err != nil {
		return s.Balance(), err
	}
	return s.set(balance), nil
}

func (s *Service) set(balance float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = balance
	return balance
}
