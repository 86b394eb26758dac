package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Poller defaults: one poll every 5 seconds, at most 24 polls, bounding
// the wait at two minutes.
const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 24
)

// PollerState is the poller's lifecycle state
type PollerState int

const (
	PollerIdle PollerState = iota
	PollerPolling
	PollerStopped
)

// Outcome is the terminal result of a polling run
type Outcome int

const (
	// OutcomeSigned means the contract reached the signed status
	OutcomeSigned Outcome = iota
	// OutcomeTimeout means the attempt ceiling was reached first
	OutcomeTimeout
)

// ErrPollerUsed is returned when Start is called on a poller that already ran
var ErrPollerUsed = errors.New("poller already started")

// ContractGetter fetches a contract by identifier. Satisfied by Client.
type ContractGetter interface {
	GetContract(ctx context.Context, id string) (*Contract, error)
}

// Poller watches a contract until the e-signature provider reports it
// signed. Polls are strictly sequential: the next poll is scheduled only
// after the previous response was processed. Transport errors count as
// attempts and never stop the run early. A poller is single-use.
type Poller struct {
	client      ContractGetter
	interval    time.Duration
	maxAttempts int
	logger      *zap.Logger

	mu         sync.Mutex
	state      PollerState
	timer      *time.Timer
	attempts   int
	contractID string
	done       func(Outcome)
}

// PollerOption configures a Poller
type PollerOption func(*Poller)

// WithInterval overrides the poll interval
func WithInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

// WithMaxAttempts overrides the attempt ceiling
func WithMaxAttempts(n int) PollerOption {
	return func(p *Poller) {
		p.maxAttempts = n
	}
}

// NewPoller creates an idle Poller
func NewPoller(client ContractGetter, logger *zap.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		client:      client,
		interval:    DefaultPollInterval,
		maxAttempts: DefaultMaxAttempts,
		logger:      logger,
		state:       PollerIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current lifecycle state
func (p *Poller) State() PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start begins polling the given contract. done is invoked exactly once
// with the terminal outcome unless the poller is cancelled first.
func (p *Poller) Start(contractID string, done func(Outcome)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PollerIdle {
		return ErrPollerUsed
	}
	p.state = PollerPolling
	p.contractID = contractID
	p.done = done
	p.timer = time.AfterFunc(p.interval, p.poll)
	return nil
}

// Cancel stops the poller: the pending timer is cleared and any response
// still in flight is discarded when it arrives. Safe to call at any time,
// including after the poller stopped on its own.
func (p *Poller) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.state = PollerStopped
}

func (p *Poller) poll() {
	p.mu.Lock()
	if p.state != PollerPolling {
		p.mu.Unlock()
		return
	}
	contractID := p.contractID
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	contract, err := p.client.GetContract(ctx, contractID)
	cancel()

	p.mu.Lock()
	// Cancelled while the request was in flight: the response must have
	// no observable effect.
	if p.state != PollerPolling {
		p.mu.Unlock()
		return
	}

	if err == nil && contract.Status == StatusSigned {
		p.state = PollerStopped
		p.timer = nil
		done := p.done
		p.mu.Unlock()
		done(OutcomeSigned)
		return
	}

	if err != nil {
		p.logger.Debug("Signature poll failed, will retry", zap.Error(err))
	}

	p.attempts++
	if p.attempts >= p.maxAttempts {
		p.state = PollerStopped
		p.timer = nil
		done := p.done
		p.mu.Unlock()
		done(OutcomeTimeout)
		return
	}

	p.timer = time.AfterFunc(p.interval, p.poll)
	p.mu.Unlock()
}
