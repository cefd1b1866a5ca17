package ioevents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/rest"
)

// EventMetadataClient manages the event metadata of providers.
type EventMetadataClient struct {
	cfg    Config
	rest   *rest.Client
	logger *slog.Logger
}

// NewEventMetadataClient creates an event metadata client for the given
// workspace.
func NewEventMetadataClient(cfg Config, opts ...Option) (*EventMetadataClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	transport, options := newTransport(cfg, opts)
	return &EventMetadataClient{
		cfg:    cfg,
		rest:   transport,
		logger: options.logger,
	}, nil
}

// eventMetadataPage is the HAL envelope of the event metadata list endpoint.
type eventMetadataPage struct {
	Embedded struct {
		EventMetadata []EventMetadata `json:"eventmetadata"`
	} `json:"_embedded"`
	Links halLinks `json:"_links"`
}

// List returns the event metadata declared by one provider.
func (c *EventMetadataClient) List(ctx context.Context, providerID string) ([]EventMetadata, error) {
	path := fmt.Sprintf("/events/providers/%s/eventmetadata", providerID)

	var metadata []EventMetadata
	for path != "" {
		var page eventMetadataPage
		if err := c.rest.Get(ctx, path, &page); err != nil {
			return nil, err
		}
		metadata = append(metadata, page.Embedded.EventMetadata...)
		path = ""
		if page.Links.Next != nil {
			path = page.Links.Next.Href
		}
	}

	c.logger.Debug("listed event metadata", "provider_id", providerID, "count", len(metadata))
	return metadata, nil
}

// Create declares a new event type on the provider.
func (c *EventMetadataClient) Create(ctx context.Context, providerID string, payload EventMetadataPayload) (*EventMetadata, error) {
	path := fmt.Sprintf("/events/%s/%s/%s/providers/%s/eventmetadata",
		c.cfg.ConsumerOrgID, c.cfg.ProjectID, c.cfg.WorkspaceID, providerID)

	var metadata EventMetadata
	if err := c.rest.Post(ctx, path, payload, &metadata); err != nil {
		return nil, err
	}

	c.logger.Info("created event metadata",
		"provider_id", providerID,
		"event_code", payload.EventCode)
	return &metadata, nil
}
