// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/store"
	"github.com/akovalyov/daybook/models"
)

// syncOrchestrator implements [SyncOrchestrator]. Local saves are synchronous;
// remote pushes ride a trailing-edge debounce timer that restarts on every
// change, so a burst of edits produces one upload after the quiet period.
//
// A single boolean latch guards the remote critical section: at most one sync
// pass runs at a time, later requests get [ErrSyncBusy]. The generation
// counter invalidates in-flight pulls: SignOut bumps it, and a pull applies
// its result only if the generation it started under is still current.
type syncOrchestrator struct {
	remote   RemoteStateService
	states   store.StateRepository
	session  AuthSession
	logger   *logger.Logger
	debounce time.Duration

	mu         sync.Mutex
	status     models.SyncStatus
	lastErr    error
	lastSyncAt time.Time
	timer      *time.Timer
	generation uint64
	inFlight   bool
	closed     bool
}

// NewSyncOrchestrator returns a [SyncOrchestrator] using the given debounce
// quiet period. The initial status reflects whether an account is linked.
func NewSyncOrchestrator(remote RemoteStateService, states store.StateRepository, session AuthSession, debounce time.Duration, log *logger.Logger) SyncOrchestrator {
	o := &syncOrchestrator{
		remote:   remote,
		states:   states,
		session:  session,
		logger:   log.GetChildLogger(),
		debounce: debounce,
		status:   models.SyncDisconnected,
	}
	if session.Connected(context.Background()) {
		o.status = models.SyncOK
	}
	return o
}

func (o *syncOrchestrator) Connect(ctx context.Context) error {
	return o.runSync(ctx, o.pull)
}

func (o *syncOrchestrator) Apply(ctx context.Context, state models.AppState) error {
	// The local save never waits for the network.
	if err := o.states.SaveState(ctx, state); err != nil {
		return fmt.Errorf("save local state: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || o.status == models.SyncDisconnected {
		return nil
	}
	o.scheduleLocked()
	return nil
}

func (o *syncOrchestrator) SyncNow(ctx context.Context) error {
	o.mu.Lock()
	o.stopTimerLocked()
	o.mu.Unlock()

	return o.runSync(ctx, o.push)
}

func (o *syncOrchestrator) SignOut(ctx context.Context) error {
	o.mu.Lock()
	o.generation++
	o.stopTimerLocked()
	o.status = models.SyncDisconnected
	o.lastErr = nil
	o.mu.Unlock()

	return o.session.SignOut(ctx)
}

func (o *syncOrchestrator) LocalState(ctx context.Context) (models.AppState, error) {
	state, _, err := o.states.LoadState(ctx)
	if err != nil {
		return models.AppState{}, fmt.Errorf("load local state: %w", err)
	}
	return state, nil
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *syncOrchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

func (o *syncOrchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.stopTimerLocked()
}

// scheduleLocked (re)arms the debounce timer. Called with o.mu held.
func (o *syncOrchestrator) scheduleLocked() {
	o.stopTimerLocked()
	o.timer = time.AfterFunc(o.debounce, o.debouncedPush)
}

// stopTimerLocked cancels a pending debounced push. Called with o.mu held.
func (o *syncOrchestrator) stopTimerLocked() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

func (o *syncOrchestrator) debouncedPush() {
	err := o.runSync(context.Background(), o.push)
	if errors.Is(err, ErrSyncBusy) {
		// Another pass holds the latch; try again after the quiet period
		// so this change set is not lost.
		o.mu.Lock()
		if !o.closed {
			o.scheduleLocked()
		}
		o.mu.Unlock()
		return
	}
	if err != nil {
		o.logger.Error().Err(err).Msg("debounced push failed")
	}
}

// runSync acquires the single-flight latch, runs pass, and folds its outcome
// into the published status.
func (o *syncOrchestrator) runSync(ctx context.Context, pass func(ctx context.Context, generation uint64) error) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	if o.inFlight {
		o.mu.Unlock()
		return ErrSyncBusy
	}
	o.inFlight = true
	o.status = models.SyncInProgress
	generation := o.generation
	o.mu.Unlock()

	err := pass(ctx, generation)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.inFlight = false
	if o.generation != generation {
		// Signed out while the pass was in flight: its outcome, success or
		// failure, belongs to the old session and must not touch the
		// published status.
		return err
	}
	switch {
	case err == nil:
		o.status = models.SyncOK
		o.lastErr = nil
		o.lastSyncAt = time.Now()
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrNotConnected):
		o.status = models.SyncDisconnected
		o.lastErr = err
	default:
		o.status = models.SyncError
		o.lastErr = err
	}
	return err
}

// pull downloads the remote state and replaces the local one with it. On a
// freshly linked account with no backup yet, the local state is pushed
// instead so the first device seeds the record.
func (o *syncOrchestrator) pull(ctx context.Context, generation uint64) error {
	remote, found, err := o.remote.Fetch(ctx)
	if err != nil {
		return err
	}
	if !found {
		o.logger.Info().Msg("no remote backup, seeding from local state")
		return o.push(ctx, generation)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != generation {
		// Signed out while the download was in flight; the result belongs
		// to the old session and must not touch local data.
		o.logger.Warn().Msg("stale pull discarded")
		return nil
	}
	if err = o.states.SaveState(ctx, remote); err != nil {
		return fmt.Errorf("replace local state: %w", err)
	}
	o.logger.Info().Msg("local state replaced from remote")
	return nil
}

func (o *syncOrchestrator) push(ctx context.Context, _ uint64) error {
	state, _, err := o.states.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("load local state: %w", err)
	}
	return o.remote.Push(ctx, state)
}
