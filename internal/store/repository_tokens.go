package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akovalyov/daybook/internal/crypto"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

type tokenRepository struct {
	kv     KV
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewTokenRepository returns a [TokenRepository] that keeps the refresh
// token sealed at rest via sealer. Access token and expiry are stored as
// plain values since they go stale within the hour anyway.
func NewTokenRepository(kv KV, sealer crypto.Sealer, logger *logger.Logger) TokenRepository {
	return &tokenRepository{kv: kv, sealer: sealer, logger: logger}
}

func (r *tokenRepository) LoadTokens(ctx context.Context) (models.TokenState, error) {
	var tokens models.TokenState

	access, err := r.getOptional(ctx, KeyAccessToken)
	if err != nil {
		return models.TokenState{}, err
	}
	tokens.AccessToken = access

	expiry, err := r.getOptional(ctx, KeyTokenExpiry)
	if err != nil {
		return models.TokenState{}, err
	}
	if expiry != "" {
		ms, convErr := strconv.ParseInt(expiry, 10, 64)
		if convErr != nil {
			return models.TokenState{}, fmt.Errorf("parse stored expiry: %w", convErr)
		}
		tokens.ExpiresAt = time.UnixMilli(ms)
	}

	sealed, err := r.getOptional(ctx, KeyRefreshToken)
	if err != nil {
		return models.TokenState{}, err
	}
	if sealed != "" {
		refresh, openErr := r.sealer.Open(sealed)
		if openErr != nil {
			// Seal key changed or the blob is corrupt. The stored grant is
			// unusable, report it as absent so the user re-consents.
			r.logger.Err(openErr).
				Str("func", "tokenRepository.LoadTokens").
				Msg("stored refresh token cannot be unsealed, treating as absent")
			return models.TokenState{AccessToken: tokens.AccessToken, ExpiresAt: tokens.ExpiresAt}, nil
		}
		tokens.RefreshToken = refresh
	}

	return tokens, nil
}

func (r *tokenRepository) SaveTokens(ctx context.Context, tokens models.TokenState) error {
	if err := r.kv.Set(ctx, KeyAccessToken, []byte(tokens.AccessToken)); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}

	expiry := strconv.FormatInt(tokens.ExpiresAt.UnixMilli(), 10)
	if err := r.kv.Set(ctx, KeyTokenExpiry, []byte(expiry)); err != nil {
		return fmt.Errorf("save token expiry: %w", err)
	}

	if tokens.RefreshToken != "" {
		sealed, err := r.sealer.Seal(tokens.RefreshToken)
		if err != nil {
			return fmt.Errorf("seal refresh token: %w", err)
		}
		if err = r.kv.Set(ctx, KeyRefreshToken, []byte(sealed)); err != nil {
			return fmt.Errorf("save refresh token: %w", err)
		}
	}

	return nil
}

func (r *tokenRepository) ClearTokens(ctx context.Context) error {
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyTokenExpiry, KeyAccountEmail} {
		if err := r.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

func (r *tokenRepository) SaveAccountEmail(ctx context.Context, email string) error {
	if err := r.kv.Set(ctx, KeyAccountEmail, []byte(email)); err != nil {
		return fmt.Errorf("save account email: %w", err)
	}
	return nil
}

func (r *tokenRepository) AccountEmail(ctx context.Context) (string, error) {
	return r.getOptional(ctx, KeyAccountEmail)
}

func (r *tokenRepository) getOptional(ctx context.Context, key string) (string, error) {
	value, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return string(value), nil
}
