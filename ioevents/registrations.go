package ioevents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/rest"
)

// RegistrationClient manages event registrations in one workspace.
type RegistrationClient struct {
	cfg    Config
	rest   *rest.Client
	logger *slog.Logger
}

// NewRegistrationClient creates a registration client for the given
// workspace.
func NewRegistrationClient(cfg Config, opts ...Option) (*RegistrationClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	transport, options := newTransport(cfg, opts)
	return &RegistrationClient{
		cfg:    cfg,
		rest:   transport,
		logger: options.logger,
	}, nil
}

// registrationPage is the HAL envelope of the registration list endpoint.
type registrationPage struct {
	Embedded struct {
		Registrations []Registration `json:"registrations"`
	} `json:"_embedded"`
	Links halLinks `json:"_links"`
}

// List returns every registration in the workspace, following pagination
// links.
func (c *RegistrationClient) List(ctx context.Context) ([]Registration, error) {
	path := fmt.Sprintf("/events/%s/%s/%s/registrations",
		c.cfg.ConsumerOrgID, c.cfg.ProjectID, c.cfg.WorkspaceID)

	var registrations []Registration
	for path != "" {
		var page registrationPage
		if err := c.rest.Get(ctx, path, &page); err != nil {
			return nil, err
		}
		registrations = append(registrations, page.Embedded.Registrations...)
		path = ""
		if page.Links.Next != nil {
			path = page.Links.Next.Href
		}
	}

	c.logger.Debug("listed registrations", "count", len(registrations))
	return registrations, nil
}

// Create subscribes a new registration in the workspace.
func (c *RegistrationClient) Create(ctx context.Context, payload RegistrationPayload) (*Registration, error) {
	path := fmt.Sprintf("/events/%s/%s/%s/registrations",
		c.cfg.ConsumerOrgID, c.cfg.ProjectID, c.cfg.WorkspaceID)

	var registration Registration
	if err := c.rest.Post(ctx, path, payload, &registration); err != nil {
		return nil, err
	}

	c.logger.Info("created registration", "name", payload.Name, "id", registration.ID)
	return &registration, nil
}
