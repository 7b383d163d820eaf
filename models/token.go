package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenState is the client's persisted OAuth credential set.
//
// AccessToken is short-lived and mutated on every refresh. RefreshToken is
// issued once per consent (or re-consent) and survives access-token
// renewals; it is cleared only by explicit sign-out. A present RefreshToken
// means the user is considered connected regardless of whether the current
// access token happens to be expired right now.
type TokenState struct {
	// AccessToken is the bearer token sent with every drive request.
	AccessToken string

	// RefreshToken is the long-lived grant used to renew AccessToken.
	// Empty when the user has never connected or has signed out.
	RefreshToken string

	// ExpiresAt is the instant after which AccessToken must not be used.
	// It already includes the safety margin subtracted at save time.
	ExpiresAt time.Time
}

// Valid reports whether AccessToken can still be used without a refresh.
func (t TokenState) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Before(t.ExpiresAt)
}

// Connected reports whether a refresh token is present, i.e. the account
// is linked even if the access token is stale.
func (t TokenState) Connected() bool {
	return t.RefreshToken != ""
}

// TokenResponse is the identity provider's token endpoint reply for both
// the authorization_code and refresh_token grants. RefreshToken is only
// present on the initial grant (or forced re-consent); refresh replies
// omit it.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// TokenError is the provider's non-2xx token endpoint body.
type TokenError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// AccountEmail extracts the "email" claim from the response's id_token.
// The token arrives over TLS straight from the token endpoint, so the
// signature is not re-verified here. Returns an empty string when no
// id_token was issued.
func (r TokenResponse) AccountEmail() (string, error) {
	if r.IDToken == "" {
		return "", nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(r.IDToken, claims); err != nil {
		return "", fmt.Errorf("parse id_token: %w", err)
	}

	email, _ := claims["email"].(string)
	return email, nil
}
