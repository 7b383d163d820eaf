package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akovalyov/daybook/internal/crypto"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

func newTestTokenRepo(t *testing.T) (TokenRepository, *fakeKV) {
	t.Helper()

	sealer, err := crypto.NewSealer("test-seal-key")
	require.NoError(t, err)

	kv := newFakeKV()
	return NewTokenRepository(kv, sealer, logger.Nop()), kv
}

func TestTokenRepository_LoadTokens_Empty(t *testing.T) {
	repo, _ := newTestTokenRepo(t)

	tokens, err := repo.LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TokenState{}, tokens)
	assert.False(t, tokens.Connected())
}

func TestTokenRepository_RoundTrip(t *testing.T) {
	repo, kv := newTestTokenRepo(t)
	ctx := context.Background()

	saved := models.TokenState{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresAt:    time.UnixMilli(1767225600000),
	}
	require.NoError(t, repo.SaveTokens(ctx, saved))

	// refresh-токен не должен лежать в базе открытым текстом
	assert.NotEqual(t, []byte("rt-1"), kv.data[KeyRefreshToken])

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.AccessToken, got.AccessToken)
	assert.Equal(t, saved.RefreshToken, got.RefreshToken)
	assert.Equal(t, saved.ExpiresAt.UnixMilli(), got.ExpiresAt.UnixMilli())
}

func TestTokenRepository_SaveTokens_KeepsOldRefreshToken(t *testing.T) {
	repo, _ := newTestTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, models.TokenState{
		AccessToken:  "at-1",
		RefreshToken: "rt-first",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	// повторное сохранение без refresh-токена (обычное обновление)
	require.NoError(t, repo.SaveTokens(ctx, models.TokenState{
		AccessToken: "at-2",
		ExpiresAt:   time.Now().Add(2 * time.Hour),
	}))

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "at-2", got.AccessToken)
	assert.Equal(t, "rt-first", got.RefreshToken)
}

func TestTokenRepository_ClearTokens(t *testing.T) {
	repo, kv := newTestTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, models.TokenState{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.SaveAccountEmail(ctx, "user@example.com"))

	require.NoError(t, repo.ClearTokens(ctx))

	tokens, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenState{}, tokens)

	email, err := repo.AccountEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
	assert.Empty(t, kv.data)
}

func TestTokenRepository_UnsealableRefreshTokenTreatedAsAbsent(t *testing.T) {
	repo, kv := newTestTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, models.TokenState{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	// допустим, ключ запечатывания сменился — блоб больше не открывается
	kv.data[KeyRefreshToken] = []byte("AAAA not a sealed blob")

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.RefreshToken)
	assert.Equal(t, "at-1", got.AccessToken)
}

func TestTokenRepository_AccountEmail(t *testing.T) {
	repo, _ := newTestTokenRepo(t)
	ctx := context.Background()

	email, err := repo.AccountEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)

	require.NoError(t, repo.SaveAccountEmail(ctx, "user@example.com"))

	email, err = repo.AccountEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}
