package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenState_Valid(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state TokenState
		want  bool
	}{
		{name: "fresh", state: TokenState{AccessToken: "at", ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "expired", state: TokenState{AccessToken: "at", ExpiresAt: now.Add(-time.Minute)}, want: false},
		{name: "exactly at expiry", state: TokenState{AccessToken: "at", ExpiresAt: now}, want: false},
		{name: "no access token", state: TokenState{ExpiresAt: now.Add(time.Hour)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Valid(now))
		})
	}
}

func TestTokenState_Connected(t *testing.T) {
	assert.True(t, TokenState{RefreshToken: "rt"}.Connected())
	// истёкший access-токен не влияет на "подключённость"
	assert.True(t, TokenState{RefreshToken: "rt", ExpiresAt: time.Unix(0, 0)}.Connected())
	assert.False(t, TokenState{AccessToken: "at"}.Connected())
}

func TestTokenResponse_AccountEmail(t *testing.T) {
	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@example.com",
		"sub":   "12345",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	email, err := TokenResponse{IDToken: idToken}.AccountEmail()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenResponse_AccountEmail_NoIDToken(t *testing.T) {
	email, err := TokenResponse{}.AccountEmail()
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestTokenResponse_AccountEmail_Garbage(t *testing.T) {
	_, err := TokenResponse{IDToken: "not-a-jwt"}.AccountEmail()
	assert.Error(t, err)
}
