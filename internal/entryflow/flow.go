// Package entryflow sequences the screens a user passes through between
// clicking Join on a pool and entering the game arena. The flow is linear
// with a single active stage; closing it at any point discards everything.
package entryflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/logger"
	"github.com/Afresh-Revolution/Knowrist/internal/metrics"
	"github.com/Afresh-Revolution/Knowrist/internal/notification"
	"github.com/Afresh-Revolution/Knowrist/internal/pool"
	"github.com/Afresh-Revolution/Knowrist/internal/wallet"

	"github.com/google/uuid"
)

// Stage identifies the single active screen of the flow.
type Stage string

const (
	StageIdle               Stage = "idle"
	StageDailyChallenge     Stage = "daily_challenge"
	StageActivationCode     Stage = "activation_code"
	StageConfirmEntry       Stage = "confirm_entry"
	StagePaymentResult      Stage = "payment_result"
	StageWordInput          Stage = "word_input"
	StageSubmissionComplete Stage = "submission_complete"
)

// verifyDebounce is how long after the last keystroke the entered activation
// code is sent for server-side verification.
const verifyDebounce = 500 * time.Millisecond

var (
	ErrInvalidStage    = errors.New("invalid stage for action")
	ErrPoolNotFound    = errors.New("pool not found")
	ErrPoolNotOpen     = errors.New("pool is not open for entry")
	ErrCodeNotVerified = errors.New("activation code has not been verified")
)

// CodeVerifier decides whether an entered activation code grants entry. The
// backend client satisfies this.
type CodeVerifier interface {
	VerifyActivationCode(ctx context.Context, code, poolID string) (backend.VerifyResult, error)
}

// PaymentResult is what the payment-outcome screen shows.
type PaymentResult struct {
	Success        bool   `json:"success"`
	ActivationCode string `json:"activationCode,omitempty"`
	Filled         bool   `json:"filled"`
	Message        string `json:"message,omitempty"`
}

// EntrySummary is what the confirm-entry screen shows.
type EntrySummary struct {
	PoolID           string  `json:"poolId"`
	PoolTitle        string  `json:"poolTitle"`
	EntryFee         float64 `json:"entryFee"`
	CurrentBalance   float64 `json:"currentBalance"`
	RemainingBalance string  `json:"remainingBalance"`
}

// Flow is the per-session entry flow. The BFF serves a single browser
// session, so one Flow instance lives for the process lifetime and is reset
// between runs.
type Flow struct {
	mu sync.Mutex

	pools         *pool.Store
	wallet        *wallet.Service
	notifications *notification.Feed
	verifier      CodeVerifier

	debounce time.Duration

	id         string
	stage      Stage
	poolID     string
	poolTitle  string
	entryFee   float64
	difficulty pool.Difficulty

	dailyCode string
	payment   PaymentResult

	words     []WordPair
	wordIndex int

	enteredCode   string
	codeVerified  bool
	verifying     bool
	verifyMessage string
	verifyTimer   *time.Timer
}

func New(pools *pool.Store, walletSvc *wallet.Service, feed *notification.Feed, verifier CodeVerifier) *Flow {
	return &Flow{
		pools:         pools,
		wallet:        walletSvc,
		notifications: feed,
		verifier:      verifier,
		debounce:      verifyDebounce,
		stage:         StageIdle,
	}
}

// Start begins the flow for a pool the user clicked Join on, landing on the
// confirm-entry screen. The pool's own difficulty drives word validation.
func (f *Flow) Start(poolID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageIdle {
		return ErrInvalidStage
	}
	return f.selectPool(poolID)
}

// StartDaily begins the flow through the daily-challenge screen instead.
func (f *Flow) StartDaily(poolID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageIdle {
		return ErrInvalidStage
	}
	if err := f.selectPool(poolID); err != nil {
		return err
	}
	f.stage = StageDailyChallenge
	return nil
}

// selectPool loads the pool payload and lands on confirm-entry. Caller holds
// the lock.
func (f *Flow) selectPool(poolID string) error {
	p, ok := f.pools.Get(poolID)
	if !ok {
		return ErrPoolNotFound
	}
	if p.Status != pool.StatusAvailable || p.IsFull {
		return ErrPoolNotOpen
	}

	f.id = uuid.NewString()
	f.poolID = p.ID
	f.poolTitle = p.Title
	f.entryFee = p.EntryFee
	f.difficulty = p.Difficulty
	f.stage = StageConfirmEntry
	return nil
}

// SelectDifficulty records the daily-challenge choice and produces the
// cosmetic daily activation code.
func (f *Flow) SelectDifficulty(difficulty pool.Difficulty) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageDailyChallenge {
		return "", ErrInvalidStage
	}

	f.difficulty = difficulty
	f.dailyCode = GenerateDailyCode(difficulty)
	f.stage = StageActivationCode
	return f.dailyCode, nil
}

// ContinueToConfirm leaves the daily activation-code screen for the shared
// confirm-entry screen.
func (f *Flow) ContinueToConfirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageActivationCode {
		return ErrInvalidStage
	}
	f.stage = StageConfirmEntry
	return nil
}

// Summary describes the pending entry: fee, balance and what would remain.
func (f *Flow) Summary() (EntrySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageConfirmEntry {
		return EntrySummary{}, ErrInvalidStage
	}

	balance := f.wallet.Balance()
	return EntrySummary{
		PoolID:           f.poolID,
		PoolTitle:        f.poolTitle,
		EntryFee:         f.entryFee,
		CurrentBalance:   balance,
		RemainingBalance: strconv.FormatFloat(balance-f.entryFee, 'f', 2, 64),
	}, nil
}

// Confirm collects the entry fee and, when that succeeds, joins the pool.
// The wallet is checked before the join ever happens; a failed deduction
// produces a failure outcome and the pool is left untouched.
func (f *Flow) Confirm() (PaymentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageConfirmEntry {
		return PaymentResult{}, ErrInvalidStage
	}

	if !f.wallet.Deduct(f.entryFee) {
		f.payment = PaymentResult{Success: false, Message: "insufficient balance"}
		f.stage = StagePaymentResult
		metrics.PoolJoinsTotal.WithLabelValues("insufficient_funds").Inc()
		return f.payment, nil
	}

	join := f.pools.Join(f.poolID, f.entryFee)
	if !join.Joined {
		// The pool closed between selection and payment; hand the fee back.
		f.wallet.Add(f.entryFee)
		f.payment = PaymentResult{Success: false, Message: "pool is no longer open for entry"}
		f.stage = StagePaymentResult
		metrics.PoolJoinsTotal.WithLabelValues("closed").Inc()
		return f.payment, nil
	}

	code := GenerateGameCode()
	f.payment = PaymentResult{Success: true, ActivationCode: code, Filled: join.Filled}
	f.stage = StagePaymentResult
	metrics.PoolJoinsTotal.WithLabelValues("ok").Inc()

	f.notifications.Add(
		"Activation Code Ready",
		fmt.Sprintf("Code for %s:", f.poolTitle),
		code,
		notification.TypeActivation,
	)

	if join.Filled {
		metrics.PoolsFilledTotal.Inc()
		f.notifications.Add(
			"Pool Full",
			fmt.Sprintf("%s is full! The game starts in 5 minutes.", f.poolTitle),
			"",
			notification.TypePoolFull,
		)
	}

	return f.payment, nil
}

// ContinueFromPayment advances past the payment-outcome screen: into word
// input after a successful payment, back to idle after a failed one.
func (f *Flow) ContinueFromPayment() (Stage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StagePaymentResult {
		return f.stage, ErrInvalidStage
	}

	if !f.payment.Success {
		f.reset()
		return StageIdle, nil
	}

	f.words = make([]WordPair, 0, TotalWords)
	f.wordIndex = 0
	f.stage = StageWordInput
	return StageWordInput, nil
}

// SubmitWord validates and records the current pair. When the last pair
// lands, the whole submission is validated once more and the flow moves to
// submission-complete. done is true once all words are in.
func (f *Flow) SubmitWord(correct, scrambled string) (done bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageWordInput {
		return false, ErrInvalidStage
	}

	if err := ValidateWord(f.difficulty, correct, scrambled); err != nil {
		return false, err
	}

	f.words = append(f.words, WordPair{Correct: correct, Scrambled: scrambled})
	f.wordIndex++

	if len(f.words) < TotalWords {
		return false, nil
	}

	if _, err := ValidateWords(f.difficulty, f.words); err != nil {
		// Drop the rejected submission so the user can redo the word.
		f.words = f.words[:len(f.words)-1]
		f.wordIndex--
		return false, err
	}

	f.stage = StageSubmissionComplete
	return true, nil
}

// WordProgress reports how many pairs are in and how many are needed.
func (f *Flow) WordProgress() (entered, total int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.words), TotalWords
}

// Rewards returns the per-word rewards and their sum for the completed
// submission.
func (f *Flow) Rewards() ([]float64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageSubmissionComplete {
		return nil, 0, ErrInvalidStage
	}

	rewards, total := WordRewards(f.difficulty, f.words)
	return rewards, total, nil
}

// SetCodeInput records a keystroke in the activation-code field. Each call
// resets the debounce timer; verification fires only once typing pauses.
func (f *Flow) SetCodeInput(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageSubmissionComplete {
		return ErrInvalidStage
	}

	f.enteredCode = normalizeCode(code)
	f.codeVerified = false
	f.verifying = false
	f.verifyMessage = ""

	if f.verifyTimer != nil {
		f.verifyTimer.Stop()
		f.verifyTimer = nil
	}

	if f.enteredCode == "" {
		return nil
	}

	pending := f.enteredCode
	f.verifyTimer = time.AfterFunc(f.debounce, func() {
		f.verifyEntered(pending)
	})
	return nil
}

// verifyEntered runs the server-side check for a debounced code. The result
// is discarded when the input changed while the request was in flight.
func (f *Flow) verifyEntered(code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f.mu.Lock()
	if f.stage != StageSubmissionComplete || f.enteredCode != code {
		f.mu.Unlock()
		return
	}
	f.verifying = true
	poolID := f.poolID
	f.mu.Unlock()

	result, err := f.verifier.VerifyActivationCode(ctx, code, poolID)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageSubmissionComplete || f.enteredCode != code {
		return
	}

	f.verifying = false
	if err != nil {
		logger.Errorf("activation code verification failed: %v", err)
		f.codeVerified = false
		f.verifyMessage = err.Error()
		return
	}

	f.codeVerified = result.Valid
	f.verifyMessage = result.Message
	if !result.Valid && f.verifyMessage == "" {
		f.verifyMessage = "Invalid activation code"
	}
}

// Verification reports the current state of the entered code.
func (f *Flow) Verification() (verified, verifying bool, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codeVerified, f.verifying, f.verifyMessage
}

// EnterArena finishes the flow. If the entered code has not been verified
// yet it is verified now, synchronously; an invalid code keeps the user on
// the submission screen.
func (f *Flow) EnterArena(ctx context.Context) error {
	f.mu.Lock()
	if f.stage != StageSubmissionComplete {
		f.mu.Unlock()
		return ErrInvalidStage
	}

	verified := f.codeVerified
	code := f.enteredCode
	poolID := f.poolID
	f.mu.Unlock()

	if !verified {
		if code == "" {
			return ErrCodeNotVerified
		}
		result, err := f.verifier.VerifyActivationCode(ctx, code, poolID)
		if err != nil {
			return err
		}
		if !result.Valid {
			if result.Message != "" {
				return errors.New(result.Message)
			}
			return ErrCodeNotVerified
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage != StageSubmissionComplete {
		return ErrInvalidStage
	}
	metrics.EntryFlowsCompletedTotal.Inc()
	f.reset()
	return nil
}

// Close abandons the flow at whatever stage it is in. All payload state is
// discarded; there is no resume.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// reset clears everything. Caller holds the lock.
func (f *Flow) reset() {
	if f.verifyTimer != nil {
		f.verifyTimer.Stop()
		f.verifyTimer = nil
	}

	f.id = ""
	f.stage = StageIdle
	f.poolID = ""
	f.poolTitle = ""
	f.entryFee = 0
	f.difficulty = ""
	f.dailyCode = ""
	f.payment = PaymentResult{}
	f.words = nil
	f.wordIndex = 0
	f.enteredCode = ""
	f.codeVerified = false
	f.verifying = false
	f.verifyMessage = ""
}

// Snapshot is the flow state the UI polls.
type Snapshot struct {
	ID            string          `json:"id,omitempty"`
	Stage         Stage           `json:"stage"`
	PoolID        string          `json:"poolId,omitempty"`
	PoolTitle     string          `json:"poolTitle,omitempty"`
	Difficulty    pool.Difficulty `json:"difficulty,omitempty"`
	DailyCode     string          `json:"dailyCode,omitempty"`
	Payment       *PaymentResult  `json:"payment,omitempty"`
	WordsEntered  int             `json:"wordsEntered"`
	TotalWords    int             `json:"totalWords"`
	CodeVerified  bool            `json:"codeVerified"`
	Verifying     bool            `json:"verifying"`
	VerifyMessage string          `json:"verifyMessage,omitempty"`
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		ID:            f.id,
		Stage:         f.stage,
		PoolID:        f.poolID,
		PoolTitle:     f.poolTitle,
		Difficulty:    f.difficulty,
		DailyCode:     f.dailyCode,
		WordsEntered:  len(f.words),
		TotalWords:    TotalWords,
		CodeVerified:  f.codeVerified,
		Verifying:     f.verifying,
		VerifyMessage: f.verifyMessage,
	}
	if f.stage == StagePaymentResult {
		payment := f.payment
		snap.Payment = &payment
	}
	return snap
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
