package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

type httpTokenClient struct {
	client *HTTPClient

	tokenEndpoint string
	clientID      string
	clientSecret  string

	logger *logger.Logger
}

// NewHTTPTokenClient constructs an HTTP implementation of [TokenClient]
// for the identity provider configured in oauthCfg.
//
// Returns an error if oauthCfg.TokenEndpoint is empty or cannot be parsed
// as a valid URL.
func NewHTTPTokenClient(oauthCfg config.ClientOAuth, logger *logger.Logger) (TokenClient, error) {
	endpoint, err := normalizeURL(oauthCfg.TokenEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid token endpoint: %w", err)
	}

	return &httpTokenClient{
		client:        NewHTTPClient(),
		tokenEndpoint: endpoint,
		clientID:      oauthCfg.ClientID,
		clientSecret:  oauthCfg.ClientSecret,
		logger:        logger,
	}, nil
}

// ExchangeCode implements [TokenClient]. It POSTs the one-time code with
// the authorization_code grant and client credentials, form-encoded, and
// decodes the provider's JSON reply. A non-2xx reply surfaces as
// [ErrGrantRejected] wrapping the provider's error_description.
func (c *httpTokenClient) ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenResponse, error) {
	return c.grant(ctx, map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"redirect_uri":  redirectURI,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	})
}

// Refresh implements [TokenClient]. It POSTs the refresh_token grant.
// The provider omits refresh_token in the reply; the caller keeps the old
// one.
func (c *httpTokenClient) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	return c.grant(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	})
}

func (c *httpTokenClient) grant(ctx context.Context, form map[string]string) (models.TokenResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(form).
		Post(c.tokenEndpoint)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}

	if resp.IsError() {
		var provider models.TokenError
		if jsonErr := json.Unmarshal(resp.Body(), &provider); jsonErr == nil && provider.Code != "" {
			c.logger.Warn().
				Str("func", "httpTokenClient.grant").
				Str("provider_error", provider.Code).
				Msg("token endpoint rejected grant")
			return models.TokenResponse{}, fmt.Errorf("%w: %s: %s", ErrGrantRejected, provider.Code, provider.Description)
		}
		return models.TokenResponse{}, fmt.Errorf("%w: %s", ErrGrantRejected, strings.TrimSpace(string(resp.Body())))
	}

	var tokens models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	return tokens, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
