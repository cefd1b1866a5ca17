// Package rest provides a thin REST client wrapper used by the toolkit's API
// clients. It wraps resty to provide JSON request/response handling, bearer
// authentication, and translation of non-2xx responses into coded errors.
//
// The wrapper is the only layer that inspects HTTP status codes; callers
// above it receive a *errors.Error whose message carries the method, path,
// status, and response body text.
package rest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"resty.dev/v3"

	"github.com/hitarthpattani/aio-toolkit-sub000/errors"
)

// Client is a JSON-over-HTTP client with a fixed base URL and default
// headers. All methods are safe for concurrent use.
type Client struct {
	http    *resty.Client
	options *clientOptions
}

// New creates a new Client with the provided options.
//
// Example:
//
//	client := rest.New(
//	    rest.WithBaseURL("https://api.adobe.io"),
//	    rest.WithBearerToken(token),
//	)
func New(opts ...Option) *Client {
	options := defaultOptions()
	applyOptions(options, opts)

	httpClient := resty.New().
		SetBaseURL(options.baseURL).
		SetTimeout(options.timeout)

	if options.authToken != "" {
		httpClient.SetAuthToken(options.authToken)
	}
	for key, value := range options.headers {
		httpClient.SetHeader(key, value)
	}

	return &Client{
		http:    httpClient,
		options: options,
	}
}

// Get performs a GET request and decodes a JSON response into out.
// Pass a nil out to discard the response body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.execute(ctx, "GET", path, nil, nil, out)
}

// Post performs a POST request with a JSON body and decodes a JSON response
// into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.execute(ctx, "POST", path, body, nil, out)
}

// Put performs a PUT request with a JSON body and decodes a JSON response
// into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.execute(ctx, "PUT", path, body, nil, out)
}

// Delete performs a DELETE request. The response body, if any, is decoded
// into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.execute(ctx, "DELETE", path, nil, nil, out)
}

// PostForm performs a POST request with a URL-encoded form body and decodes
// a JSON response into out.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.execute(ctx, "POST", path, nil, form, out)
}

// Close releases resources held by the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// execute builds and sends one request, translating transport failures and
// non-2xx responses into coded errors.
func (c *Client) execute(ctx context.Context, method, path string, body any, form url.Values, out any) error {
	op := "rest." + strings.ToLower(method)

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if form != nil {
		req.SetFormDataFromValues(form)
	}
	if out != nil {
		req.SetResult(out)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		c.options.logger.Error("request failed",
			"method", method,
			"path", path,
			"error", err)
		return errors.Wrap(errors.CodeNetwork, op, err)
	}

	if res.IsError() {
		c.options.logger.Error("request returned error status",
			"method", method,
			"path", path,
			"status", res.StatusCode())
		message := fmt.Sprintf("%s %s: %s", method, path, res.Status())
		if bodyText := strings.TrimSpace(res.String()); bodyText != "" {
			message = fmt.Sprintf("%s: %s", message, bodyText)
		}
		return errors.New(errors.CodeFromStatus(res.StatusCode()), op, message)
	}

	c.options.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", res.StatusCode())
	return nil
}
