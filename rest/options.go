// Package rest provides functional options for configuring the REST client.
package rest

import (
	"log/slog"
	"time"
)

// defaultTimeout bounds every request when no timeout option is given.
const defaultTimeout = 30 * time.Second

// clientOptions holds the configuration for the Client.
type clientOptions struct {
	baseURL   string
	timeout   time.Duration
	logger    *slog.Logger
	authToken string
	headers   map[string]string
}

// Option configures the Client.
type Option func(*clientOptions)

// WithBaseURL configures the base URL prepended to every request path.
func WithBaseURL(baseURL string) Option {
	return func(opts *clientOptions) {
		opts.baseURL = baseURL
	}
}

// WithTimeout configures the per-request timeout. A zero duration disables
// the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *clientOptions) {
		opts.timeout = timeout
	}
}

// WithLogger configures the client with a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithBearerToken configures the Authorization bearer token sent with every
// request.
func WithBearerToken(token string) Option {
	return func(opts *clientOptions) {
		opts.authToken = token
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(opts *clientOptions) {
		opts.headers[key] = value
	}
}

// defaultOptions returns the default client options.
func defaultOptions() *clientOptions {
	return &clientOptions{
		timeout: defaultTimeout,
		logger:  slog.Default(),
		headers: make(map[string]string),
	}
}

// applyOptions applies the given options to the client options.
func applyOptions(opts *clientOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
