// Package ims obtains Adobe IMS access tokens using the OAuth server-to-
// server (client credentials) flow. The resulting token authenticates the
// ioevents clients.
package ims

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/hitarthpattani/aio-toolkit-sub000/errors"
	"github.com/hitarthpattani/aio-toolkit-sub000/rest"
)

// DefaultURL is the production IMS endpoint.
const DefaultURL = "https://ims-na1.adobelogin.com"

// tokenPath is the IMS v3 token endpoint.
const tokenPath = "/ims/token/v3"

// Config holds the OAuth server-to-server credentials.
type Config struct {
	// URL overrides the IMS endpoint. Empty selects DefaultURL.
	URL string

	// ClientID is the OAuth client id.
	ClientID string

	// ClientSecret is the OAuth client secret.
	ClientSecret string

	// Scopes are the OAuth scopes to request.
	Scopes []string
}

// Validate checks that the credentials are present.
func (c *Config) Validate() error {
	const op = "ims.config"
	switch {
	case c.ClientID == "":
		return errors.New(errors.CodeInvalidConfig, op, "client id is required")
	case c.ClientSecret == "":
		return errors.New(errors.CodeInvalidConfig, op, "client secret is required")
	case len(c.Scopes) == 0:
		return errors.New(errors.CodeInvalidConfig, op, "at least one scope is required")
	}
	return nil
}

// Token is an issued IMS access token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`

	issuedAt time.Time
}

// ExpiresAt returns the instant the token stops being valid.
func (t *Token) ExpiresAt() time.Time {
	return t.issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Client requests access tokens from IMS.
type Client struct {
	cfg    Config
	rest   *rest.Client
	logger *slog.Logger
}

// clientOptions holds the optional client configuration.
type clientOptions struct {
	logger *slog.Logger
	rest   *rest.Client
}

// Option configures the Client.
type Option func(*clientOptions)

// WithLogger configures the client with a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithRESTClient injects a pre-built transport. This is primarily used for
// testing against local servers.
func WithRESTClient(client *rest.Client) Option {
	return func(opts *clientOptions) {
		opts.rest = client
	}
}

// New creates an IMS client with the given credentials.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &clientOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	transport := options.rest
	if transport == nil {
		baseURL := cfg.URL
		if baseURL == "" {
			baseURL = DefaultURL
		}
		transport = rest.New(
			rest.WithBaseURL(baseURL),
			rest.WithLogger(options.logger),
		)
	}

	return &Client{
		cfg:    cfg,
		rest:   transport,
		logger: options.logger,
	}, nil
}

// GetToken requests a fresh access token.
func (c *Client) GetToken(ctx context.Context) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("scope", strings.Join(c.cfg.Scopes, ","))

	token := Token{issuedAt: time.Now()}
	if err := c.rest.PostForm(ctx, tokenPath, form, &token); err != nil {
		return nil, err
	}

	c.logger.Info("obtained ims token",
		"client_id", c.cfg.ClientID,
		"expires_in", token.ExpiresIn)
	return &token, nil
}
