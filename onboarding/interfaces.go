package onboarding

import (
	"context"

	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

// ProviderStore is the remote provider capability the orchestrator needs.
// ioevents.ProviderClient satisfies it.
type ProviderStore interface {
	// List returns every existing provider in the consumer organization.
	List(ctx context.Context) ([]ioevents.Provider, error)

	// Create registers a new provider.
	Create(ctx context.Context, payload ioevents.ProviderPayload) (*ioevents.Provider, error)
}

// EventMetadataStore is the remote event metadata capability.
// ioevents.EventMetadataClient satisfies it.
type EventMetadataStore interface {
	// List returns the event metadata declared by one provider.
	List(ctx context.Context, providerID string) ([]ioevents.EventMetadata, error)

	// Create declares a new event type on a provider.
	Create(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error)
}

// RegistrationStore is the remote registration capability.
// ioevents.RegistrationClient satisfies it.
type RegistrationStore interface {
	// List returns every existing registration in the workspace.
	List(ctx context.Context) ([]ioevents.Registration, error)

	// Create subscribes a new registration.
	Create(ctx context.Context, payload ioevents.RegistrationPayload) (*ioevents.Registration, error)
}
