package onboarding

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

func newEventResolver(store EventMetadataStore) *eventResolver {
	return &eventResolver{store: store, logger: discardLogger()}
}

func resolvedProviderResult(key, label, id string) ProviderResult {
	return ProviderResult{
		Created: true,
		Provider: ResolvedProvider{
			ID:            id,
			Key:           key,
			Label:         "My Project - " + label,
			OriginalLabel: label,
		},
	}
}

func TestEventResolverCreatesMissingEvents(t *testing.T) {
	store := &mockEventMetadataStore{
		createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
			assert.Equal(t, "p-1", providerID)
			return &ioevents.EventMetadata{ID: "em-1", EventCode: payload.EventCode}, nil
		},
	}

	events := []Event{
		{EventCode: "com.example.created", ProviderKey: "commerce", RegistrationKey: "r1"},
		{EventCode: "com.example.updated", ProviderKey: "commerce", RegistrationKey: "r1"},
	}
	results := newEventResolver(store).Resolve(context.Background(), events,
		[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

	require.Len(t, results, 2)
	for i, result := range results {
		assert.True(t, result.Created)
		assert.Equal(t, events[i].EventCode, result.Event.EventCode)
		assert.Equal(t, "p-1", result.Provider.ID, "result must be stamped with the owning provider")
	}

	// The payload labels the event with its own code.
	require.Len(t, store.createCalls, 2)
	assert.Equal(t, "com.example.created", store.createCalls[0].Label)
	assert.Equal(t, "com.example.created", store.createCalls[0].Description)
}

func TestEventResolverSkipPayloadIsMinimal(t *testing.T) {
	store := &mockEventMetadataStore{
		listFunc: func(ctx context.Context, providerID string) ([]ioevents.EventMetadata, error) {
			return []ioevents.EventMetadata{{ID: "em-9", EventCode: "com.example.created"}}, nil
		},
	}

	results := newEventResolver(store).Resolve(context.Background(),
		[]Event{{EventCode: "com.example.created", ProviderKey: "commerce"}},
		[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

	require.Len(t, results, 1)
	result := results[0]
	assert.True(t, result.Skipped)
	// Unlike provider skips, the event skip carries the event code only.
	assert.Equal(t, ResolvedEvent{EventCode: "com.example.created"}, result.Event)
	assert.Empty(t, store.createCalls)
}

func TestEventResolverIDFallback(t *testing.T) {
	tests := []struct {
		name     string
		response *ioevents.EventMetadata
		wantID   string
	}{
		{name: "response id wins", response: &ioevents.EventMetadata{ID: "em-1", EventCode: "x"}, wantID: "em-1"},
		{name: "falls back to response event code", response: &ioevents.EventMetadata{EventCode: "x"}, wantID: "x"},
		{name: "falls back to input event code", response: &ioevents.EventMetadata{}, wantID: "com.example.thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockEventMetadataStore{
				createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
					return tt.response, nil
				},
			}

			results := newEventResolver(store).Resolve(context.Background(),
				[]Event{{EventCode: "com.example.thing", ProviderKey: "commerce"}},
				[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

			require.Len(t, results, 1)
			assert.Equal(t, tt.wantID, results[0].Event.ID)
		})
	}
}

func TestEventResolverPassesSampleTemplate(t *testing.T) {
	template := map[string]any{"sku": "ABC", "qty": 1}
	store := &mockEventMetadataStore{
		createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
			return &ioevents.EventMetadata{ID: "em-1"}, nil
		},
	}

	newEventResolver(store).Resolve(context.Background(),
		[]Event{
			{EventCode: "with.template", ProviderKey: "commerce", SampleEventTemplate: template},
			{EventCode: "without.template", ProviderKey: "commerce"},
		},
		[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

	require.Len(t, store.createCalls, 2)
	assert.Equal(t, template, store.createCalls[0].SampleEventTemplate)
	assert.Nil(t, store.createCalls[1].SampleEventTemplate)
}

func TestEventResolverSkipsProvidersWithoutID(t *testing.T) {
	store := &mockEventMetadataStore{}
	failed := ProviderResult{
		Provider: ResolvedProvider{Key: "commerce", OriginalLabel: "Commerce"},
		Error:    "boom",
	}

	results := newEventResolver(store).Resolve(context.Background(),
		[]Event{{EventCode: "com.example.created", ProviderKey: "commerce"}},
		[]ProviderResult{failed})

	assert.Empty(t, results, "no event processing for providers that failed to resolve")
	assert.Empty(t, store.createCalls)
}

func TestEventResolverSwallowsListFailure(t *testing.T) {
	store := &mockEventMetadataStore{
		listFunc: func(ctx context.Context, providerID string) ([]ioevents.EventMetadata, error) {
			return nil, fmt.Errorf("metadata endpoint down")
		},
		createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
			return &ioevents.EventMetadata{ID: "em-1", EventCode: payload.EventCode}, nil
		},
	}

	results := newEventResolver(store).Resolve(context.Background(),
		[]Event{{EventCode: "com.example.created", ProviderKey: "commerce"}},
		[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

	// The list failure is treated as "no existing events": creation proceeds.
	require.Len(t, results, 1)
	assert.True(t, results[0].Created)
}

func TestEventResolverCreateFailureContinuesLoop(t *testing.T) {
	store := &mockEventMetadataStore{
		createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
			if payload.EventCode == "broken.event" {
				return nil, fmt.Errorf("API Error")
			}
			return &ioevents.EventMetadata{ID: "em-1", EventCode: payload.EventCode}, nil
		},
	}

	results := newEventResolver(store).Resolve(context.Background(),
		[]Event{
			{EventCode: "broken.event", ProviderKey: "commerce"},
			{EventCode: "fine.event", ProviderKey: "commerce"},
		},
		[]ProviderResult{resolvedProviderResult("commerce", "Commerce", "p-1")})

	require.Len(t, results, 2)
	assert.True(t, results[0].Failed())
	assert.Equal(t, "API Error", results[0].Error)
	assert.True(t, results[1].Created)
}

func TestEventResolverFiltersByProviderKey(t *testing.T) {
	store := &mockEventMetadataStore{
		createFunc: func(ctx context.Context, providerID string, payload ioevents.EventMetadataPayload) (*ioevents.EventMetadata, error) {
			return &ioevents.EventMetadata{ID: "em-" + providerID, EventCode: payload.EventCode}, nil
		},
	}

	results := newEventResolver(store).Resolve(context.Background(),
		[]Event{
			{EventCode: "commerce.event", ProviderKey: "commerce"},
			{EventCode: "erp.event", ProviderKey: "erp"},
		},
		[]ProviderResult{
			resolvedProviderResult("commerce", "Commerce", "p-1"),
			resolvedProviderResult("erp", "ERP", "p-2"),
		})

	require.Len(t, results, 2)
	assert.Equal(t, "commerce.event", results[0].Event.EventCode)
	assert.Equal(t, "p-1", results[0].Provider.ID)
	assert.Equal(t, "erp.event", results[1].Event.EventCode)
	assert.Equal(t, "p-2", results[1].Provider.ID)
}
