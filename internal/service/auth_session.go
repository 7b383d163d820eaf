// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akovalyov/daybook/internal/adapter"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/store"
	"github.com/akovalyov/daybook/models"
)

// expirySafetyMargin is subtracted from the grant lifetime so the token is
// never used in the last moments before the provider rejects it.
const expirySafetyMargin = 60 * time.Second

// authSession implements [AuthSession] on top of the token repository and
// the OAuth token endpoint client.
type authSession struct {
	tokens store.TokenRepository
	oauth  adapter.TokenClient
	logger *logger.Logger

	// mu serializes refresh attempts so concurrent callers never race two
	// refresh grants for the same stored token.
	mu  sync.Mutex
	now func() time.Time
}

// NewAuthSession returns an [AuthSession] backed by the given repository.
func NewAuthSession(tokens store.TokenRepository, oauth adapter.TokenClient, log *logger.Logger) AuthSession {
	return &authSession{
		tokens: tokens,
		oauth:  oauth,
		logger: log.GetChildLogger(),
		now:    time.Now,
	}
}

func (s *authSession) SaveTokens(ctx context.Context, grant models.TokenResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveGrant(ctx, grant)
}

// saveGrant is called with s.mu held.
func (s *authSession) saveGrant(ctx context.Context, grant models.TokenResponse) error {
	state := models.TokenState{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(grant.ExpiresIn)*time.Second - expirySafetyMargin),
	}
	if err := s.tokens.SaveTokens(ctx, state); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}

	if email, err := grant.AccountEmail(); err == nil && email != "" {
		if err = s.tokens.SaveAccountEmail(ctx, email); err != nil {
			s.logger.Error().Err(err).Msg("save account email")
		}
	}

	return nil
}

func (s *authSession) EnsureValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.tokens.LoadTokens(ctx)
	if err != nil {
		return "", fmt.Errorf("load tokens: %w", err)
	}

	if state.Valid(s.now()) {
		return state.AccessToken, nil
	}
	if !state.Connected() {
		if state.AccessToken == "" {
			return "", ErrNotConnected
		}
		// Expired access token with nothing to refresh it by: the session
		// is over, leftovers are useless.
		if err = s.tokens.ClearTokens(ctx); err != nil {
			s.logger.Error().Err(err).Msg("clear tokens")
		}
		return "", ErrSessionExpired
	}

	grant, err := s.oauth.Refresh(ctx, state.RefreshToken)
	if err != nil {
		if errors.Is(err, adapter.ErrGrantRejected) {
			// Revoked or otherwise dead grant: only a new consent flow
			// can recover, so drop everything we stored.
			s.logger.Warn().Err(err).Msg("refresh grant rejected, clearing session")
			if clearErr := s.tokens.ClearTokens(ctx); clearErr != nil {
				s.logger.Error().Err(clearErr).Msg("clear tokens")
			}
			return "", fmt.Errorf("%w: %s", ErrSessionExpired, err)
		}
		// Transient failure (network, 5xx): the stored grant may still be
		// good, keep it and let the caller retry later.
		return "", fmt.Errorf("refresh access token: %w", err)
	}

	if err = s.saveGrant(ctx, grant); err != nil {
		return "", err
	}

	return grant.AccessToken, nil
}

func (s *authSession) Connected(ctx context.Context) bool {
	state, err := s.tokens.LoadTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("load tokens")
		return false
	}
	return state.Connected()
}

func (s *authSession) AccountEmail(ctx context.Context) string {
	email, err := s.tokens.AccountEmail(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("load account email")
		return ""
	}
	return email
}

func (s *authSession) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	s.logger.Info().Msg("signed out")
	return nil
}
