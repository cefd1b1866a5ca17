package ioevents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/rest"
)

// ProviderClient manages event providers for one consumer organization.
type ProviderClient struct {
	cfg    Config
	rest   *rest.Client
	logger *slog.Logger
}

// NewProviderClient creates a provider client for the given workspace.
func NewProviderClient(cfg Config, opts ...Option) (*ProviderClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	transport, options := newTransport(cfg, opts)
	return &ProviderClient{
		cfg:    cfg,
		rest:   transport,
		logger: options.logger,
	}, nil
}

// providerPage is the HAL envelope of the provider list endpoint.
type providerPage struct {
	Embedded struct {
		Providers []Provider `json:"providers"`
	} `json:"_embedded"`
	Links halLinks `json:"_links"`
}

// List returns every provider in the consumer organization, following
// pagination links.
func (c *ProviderClient) List(ctx context.Context) ([]Provider, error) {
	path := fmt.Sprintf("/events/%s/providers", c.cfg.ConsumerOrgID)

	var providers []Provider
	for path != "" {
		var page providerPage
		if err := c.rest.Get(ctx, path, &page); err != nil {
			return nil, err
		}
		providers = append(providers, page.Embedded.Providers...)
		path = ""
		if page.Links.Next != nil {
			path = page.Links.Next.Href
		}
	}

	c.logger.Debug("listed providers", "count", len(providers))
	return providers, nil
}

// Create registers a new provider in the workspace.
func (c *ProviderClient) Create(ctx context.Context, payload ProviderPayload) (*Provider, error) {
	path := fmt.Sprintf("/events/%s/%s/%s/providers",
		c.cfg.ConsumerOrgID, c.cfg.ProjectID, c.cfg.WorkspaceID)

	var provider Provider
	if err := c.rest.Post(ctx, path, payload, &provider); err != nil {
		return nil, err
	}

	c.logger.Info("created provider", "label", payload.Label, "id", provider.ID)
	return &provider, nil
}
