// Package ioevents provides clients for the Adobe I/O Events management
// APIs: event providers, event metadata, and registrations. The clients
// satisfy the store interfaces the onboarding orchestrator consumes.
//
// All list calls unwrap the API's HAL envelopes and follow "next" links, so
// callers always receive complete collections.
package ioevents

import (
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/errors"
	"github.com/hitarthpattani/aio-toolkit-sub000/rest"
)

// DefaultBaseURL is the production Adobe I/O Events API endpoint.
const DefaultBaseURL = "https://api.adobe.io"

// Config holds the workspace coordinates and credentials shared by every
// ioevents client.
type Config struct {
	// BaseURL overrides the API endpoint. Empty selects DefaultBaseURL.
	BaseURL string

	// ConsumerOrgID is the IMS organization the providers live in.
	ConsumerOrgID string

	// ProjectID is the Developer Console project.
	ProjectID string

	// WorkspaceID is the Developer Console workspace.
	WorkspaceID string

	// APIKey is the client id sent as the x-api-key header.
	APIKey string

	// AccessToken is the IMS bearer token.
	AccessToken string
}

// Validate checks that every required coordinate and credential is present.
func (c *Config) Validate() error {
	const op = "ioevents.config"
	switch {
	case c.ConsumerOrgID == "":
		return errors.New(errors.CodeInvalidConfig, op, "consumer org id is required")
	case c.ProjectID == "":
		return errors.New(errors.CodeInvalidConfig, op, "project id is required")
	case c.WorkspaceID == "":
		return errors.New(errors.CodeInvalidConfig, op, "workspace id is required")
	case c.APIKey == "":
		return errors.New(errors.CodeInvalidConfig, op, "api key is required")
	case c.AccessToken == "":
		return errors.New(errors.CodeInvalidConfig, op, "access token is required")
	}
	return nil
}

// clientOptions holds the optional configuration shared by the clients.
type clientOptions struct {
	logger *slog.Logger
	rest   *rest.Client
}

// Option configures an ioevents client.
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

// newTransport builds the shared REST transport for a validated config,
// honoring an injected one.
func newTransport(cfg Config, opts []Option) (*rest.Client, *clientOptions) {
	options := &clientOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	if options.rest != nil {
		return options.rest, options
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := rest.New(
		rest.WithBaseURL(baseURL),
		rest.WithBearerToken(cfg.AccessToken),
		rest.WithHeader("x-api-key", cfg.APIKey),
		rest.WithHeader("Accept", "application/hal+json"),
		rest.WithLogger(options.logger),
	)
	return transport, options
}
