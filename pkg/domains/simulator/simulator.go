// Package simulator implements the fault-injection gateway: a call wrapper
// that, driven by a shared configuration, injects network delay and
// categorized synthetic failures in front of real operations.
package simulator

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

type FailureKind string

const (
	NotFound     FailureKind = "NOT_FOUND"
	ServerError  FailureKind = "SERVER_ERROR"
	NetworkError FailureKind = "NETWORK_ERROR"
)

// SyntheticError is a failure injected by the gateway instead of running the
// wrapped operation.
type SyntheticError struct {
	Kind FailureKind
}

func (e *SyntheticError) Error() string {
	return string(e.Kind)
}

// Config drives every Simulate call. The rates are probabilities in [0,1];
// NotFoundRate and ServerErrorRate partition FailureRate, the remainder
// classifies as NETWORK_ERROR.
type Config struct {
	Enabled         bool    `json:"enabled"`
	DelayMs         int     `json:"delayMs"`
	FailureRate     float64 `json:"failureRate"`
	NotFoundRate    float64 `json:"notFoundRate"`
	ServerErrorRate float64 `json:"serverErrorRate"`
}

// Override shadows individual Config fields for one call or one update. Nil
// fields keep the current value.
type Override struct {
	Enabled         *bool    `json:"enabled"`
	DelayMs         *int     `json:"delayMs"`
	FailureRate     *float64 `json:"failureRate"`
	NotFoundRate    *float64 `json:"notFoundRate"`
	ServerErrorRate *float64 `json:"serverErrorRate"`
}

func (c Config) merge(o *Override) Config {
	if o == nil {
		return c
	}
	if o.Enabled != nil {
		c.Enabled = *o.Enabled
	}
	if o.DelayMs != nil {
		c.DelayMs = *o.DelayMs
	}
	if o.FailureRate != nil {
		c.FailureRate = *o.FailureRate
	}
	if o.NotFoundRate != nil {
		c.NotFoundRate = *o.NotFoundRate
	}
	if o.ServerErrorRate != nil {
		c.ServerErrorRate = *o.ServerErrorRate
	}
	return c
}

// Simulator holds the shared configuration behind an atomic pointer so
// updates swap the whole value and readers never observe a torn config.
type Simulator struct {
	cfg   atomic.Pointer[Config]
	rand  func() float64
	sleep func(ctx context.Context, d time.Duration) error
}

func New(cfg Config) *Simulator {
	s := &Simulator{
		rand:  rand.Float64,
		sleep: sleepCtx,
	}
	s.cfg.Store(&cfg)
	return s
}

// Config returns a copy of the current configuration.
func (s *Simulator) Config() Config {
	return *s.cfg.Load()
}

// Update merges the patch over the current configuration and publishes the
// result in one pointer swap.
func (s *Simulator) Update(patch Override) Config {
	next := s.cfg.Load().merge(&patch)
	s.cfg.Store(&next)
	return next
}

// Simulate wraps op. Disabled, it delegates immediately. Enabled, it sleeps
// for the configured delay, then draws one uniform value: at or above
// FailureRate the real operation runs; below it a synthetic failure is
// returned and op is never called. The same draw classifies the failure
// against NotFoundRate and NotFoundRate+ServerErrorRate, in that order — the
// original storefront reuses the draw like this, so rates above FailureRate
// leave later categories unreachable.
func (s *Simulator) Simulate(ctx context.Context, op func() error, override *Override) error {
	cfg := s.Config().merge(override)

	if !cfg.Enabled {
		return op()
	}

	if err := s.sleep(ctx, time.Duration(cfg.DelayMs)*time.Millisecond); err != nil {
		return err
	}

	r := s.rand()
	if r < cfg.FailureRate {
		switch {
		case r < cfg.NotFoundRate:
			return &SyntheticError{Kind: NotFound}
		case r < cfg.NotFoundRate+cfg.ServerErrorRate:
			return &SyntheticError{Kind: ServerError}
		default:
			return &SyntheticError{Kind: NetworkError}
		}
	}

	return op()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
