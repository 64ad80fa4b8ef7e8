package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
)

// ErrOpen is returned while the breaker rejects calls.
var ErrOpen = errors.New("circuit breaker is open")

// State is the breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker settings.
type Config struct {
	// Name identifies the protected dependency in logs.
	Name string
	// FailureThreshold is the number of consecutive failures that opens
	// the breaker.
	FailureThreshold int
	// OpenTimeout is how long the breaker stays open before allowing a
	// probe request through.
	OpenTimeout time.Duration
	// IsFailure decides whether an error counts against the threshold.
	// Defaults to any non-nil error.
	IsFailure func(err error) bool
}

// DefaultConfig returns the settings used for service-to-service calls.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// Breaker protects a downstream dependency. After FailureThreshold
// consecutive failures it fails fast with ErrOpen; after OpenTimeout a
// single probe is let through, and one success closes it again.
type Breaker struct {
	cfg Config
	log *logger.ZapLogger

	mu            sync.Mutex
	state         State
	failures      int
	openedAt      time.Time
	probeInFlight bool
}

// New creates a breaker from the given config.
func New(cfg Config, log *logger.ZapLogger) *Breaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}
	return &Breaker{cfg: cfg, log: log, state: StateClosed}
}

// Execute runs fn under breaker protection.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}

	err := fn(ctx)
	b.after(err)
	return err
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if time.Since(b.openedAt) < b.cfg.OpenTimeout {
			return ErrOpen
		}
		b.setState(StateHalfOpen)
		b.probeInFlight = true
		return nil
	default: // StateHalfOpen
		if b.probeInFlight {
			return ErrOpen
		}
		b.probeInFlight = true
		return nil
	}
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.probeInFlight = false
	}

	if b.cfg.IsFailure(err) {
		b.failures++
		if b.state == StateHalfOpen || (b.state == StateClosed && b.failures >= b.cfg.FailureThreshold) {
			b.setState(StateOpen)
			b.openedAt = time.Now()
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.setState(StateClosed)
	}
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	prev := b.state
	b.state = state

	b.log.Info("Circuit breaker state changed",
		logger.String("name", b.cfg.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", b.failures))
}
