// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akovalyov/daybook/internal/adapter"
	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
)

const callbackPath = "/oauth/callback"

// callbackResult is what the loopback redirect handler delivers to the
// Link call that is waiting for it.
type callbackResult struct {
	code string
	err  error
}

// accountLinker implements [AccountLinker]. Every Link call registers a
// one-shot channel keyed by a fresh state id; the redirect handler looks the
// channel up by the id that came back and delivers exactly once. A redirect
// with an unknown or stale id is dropped.
type accountLinker struct {
	cfg     config.ClientOAuth
	oauth   adapter.TokenClient
	session AuthSession
	logger  *logger.Logger

	mu      sync.Mutex
	pending map[string]chan callbackResult
	consent string
}

// NewAccountLinker returns an [AccountLinker] for the configured provider.
func NewAccountLinker(cfg config.ClientOAuth, oauth adapter.TokenClient, session AuthSession, log *logger.Logger) AccountLinker {
	return &accountLinker{
		cfg:     cfg,
		oauth:   oauth,
		session: session,
		logger:  log.GetChildLogger(),
		pending: make(map[string]chan callbackResult),
	}
}

func (l *accountLinker) Link(ctx context.Context) error {
	redirectURI := fmt.Sprintf("http://127.0.0.1:%d%s", l.cfg.RedirectPort, callbackPath)

	stateID := uuid.NewString()
	resultCh := l.register(stateID)
	defer l.unregister(stateID)

	srv, err := l.startLoopback()
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.logger.Error().Err(err).Msg("shutdown loopback server")
		}
	}()

	consentURL := l.buildConsentURL(stateID, redirectURI)
	l.mu.Lock()
	l.consent = consentURL
	l.mu.Unlock()

	if err := clipboard.WriteAll(consentURL); err != nil {
		l.logger.Debug().Err(err).Msg("copy consent url to clipboard")
	}
	l.logger.Info().Str("url", consentURL).Msg("waiting for consent")

	var res callbackResult
	select {
	case res = <-resultCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	if res.err != nil {
		return res.err
	}

	grant, err := l.oauth.ExchangeCode(ctx, res.code, redirectURI)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if err = l.session.SaveTokens(ctx, grant); err != nil {
		return err
	}

	l.logger.Info().Msg("account linked")
	return nil
}

func (l *accountLinker) ConsentURL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.consent
}

func (l *accountLinker) register(stateID string) chan callbackResult {
	ch := make(chan callbackResult, 1)
	l.mu.Lock()
	l.pending[stateID] = ch
	l.mu.Unlock()
	return ch
}

func (l *accountLinker) unregister(stateID string) {
	l.mu.Lock()
	delete(l.pending, stateID)
	l.mu.Unlock()
}

func (l *accountLinker) buildConsentURL(stateID, redirectURI string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", l.cfg.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", l.cfg.Scopes)
	params.Set("state", stateID)
	// offline access + forced consent so the provider always reissues a
	// refresh token on relink.
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return l.cfg.AuthEndpoint + "?" + params.Encode()
}

func (l *accountLinker) startLoopback() (*http.Server, error) {
	router := chi.NewRouter()
	router.Get(callbackPath, l.handleCallback)

	addr := fmt.Sprintf("127.0.0.1:%d", l.cfg.RedirectPort)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: router}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.Error().Err(err).Msg("loopback server")
		}
	}()

	return srv, nil
}

func (l *accountLinker) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	l.mu.Lock()
	ch, ok := l.pending[query.Get("state")]
	if ok {
		delete(l.pending, query.Get("state"))
	}
	l.mu.Unlock()
	if !ok {
		l.logger.Warn().Msg("redirect with unknown state id dropped")
		http.Error(w, "unknown request", http.StatusBadRequest)
		return
	}

	if errCode := query.Get("error"); errCode != "" {
		ch <- callbackResult{err: fmt.Errorf("%w: %s", ErrConsentDenied, errCode)}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Access was denied. You can close this window."))
		return
	}

	ch <- callbackResult{code: query.Get("code")}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Daybook is connected. You can close this window."))
}
