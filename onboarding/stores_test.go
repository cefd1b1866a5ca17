// Package onboarding provides the shared test doubles for the resolver and
// orchestrator tests.
package onboarding

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

// discardLogger silences resolver logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockProviderStore implements ProviderStore for testing.
type mockProviderStore struct {
	listFunc   func(ctx context.Context) ([]ioevents.Provider, error)
	createFunc func(ctx context.Context, payload ioevents.ProviderPayload) (*ioevents.Provider, error)

	createCalls []ioevents.ProviderPayload
}

func (m *mockProviderStore) List(ctx context.Context) ([]ioevents.Provider, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProviderStore) Create(ctx context.Context, payload ioevents.ProviderPayload) (*ioevents.Provider, error) {
	m.createCalls = append(m.createCalls, payload)
	if m.createFunc != nil {
		return m.createFunc(ctx, payload)
	}
	return nil, fmt.Errorf("Create not implemented")
}

// mockEventMetadataStore implements EventMetadataStore for testing.
type mockEventMetadataStore struct {
	listFunc   func(ctx context.Context, providerID string) ([]ioevents.EventMetadata, error)
	createFunc func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error)

	createCalls []ioevents.EventMetadataPayload
}

func (m *mockEventMetadataStore) List(ctx context.Context, providerID string) ([]ioevents.EventMetadata, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, providerID)
	}
	return nil, nil
}

func (m *mockEventMetadataStore) Create(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
	m.createCalls = append(m.createCalls, payload)
	if m.createFunc != nil {
		return m.createFunc(ctx, providerID, payload)
	}
	return nil, fmt.Errorf("Create not implemented")
}

// mockRegistrationStore implements RegistrationStore for testing.
type mockRegistrationStore struct {
	listFunc   func(ctx context.Context) ([]ioevents.Registration, error)
	createFunc func(ctx context.Context, payload ioevents.RegistrationPayload) (*ioevents.Registration, error)

	createCalls []ioevents.RegistrationPayload
}

func (m *mockRegistrationStore) List(ctx context.Context) ([]ioevents.Registration, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRegistrationStore) Create(ctx context.Context, payload ioevents.RegistrationPayload) (*ioevents.Registration, error) {
	m.createCalls = append(m.createCalls, payload)
	if m.createFunc != nil {
		return m.createFunc(ctx, payload)
	}
	return nil, fmt.Errorf("Create not implemented")
}
