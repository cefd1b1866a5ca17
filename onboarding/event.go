package onboarding

import (
	"context"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

// eventResolver creates missing event metadata for every successfully
// resolved provider.
type eventResolver struct {
	store  EventMetadataStore
	logger *slog.Logger
}

// Resolve walks the provider results in order and, for each provider with a
// resolved id, creates the event metadata not yet present remotely. Every
// result is stamped with the owning provider.
//
// Failures listing one provider's existing metadata are swallowed: they are
// logged and treated as "no existing events" so one provider's outage never
// blocks the others. Create failures are per-item.
func (r *eventResolver) Resolve(ctx context.Context, events []Event, providerResults []ProviderResult) []EventResult {
	results := make([]EventResult, 0, len(events))

	for _, providerResult := range providerResults {
		provider := providerResult.Provider
		if provider.ID == "" {
			r.logger.Warn("skipping events for unresolved provider",
				"key", provider.Key,
				"label", provider.OriginalLabel)
			continue
		}

		existing := make(map[string]bool)
		remote, err := r.store.List(ctx, provider.ID)
		if err != nil {
			r.logger.Warn("listing event metadata failed, assuming none exist",
				"provider_id", provider.ID,
				"error", err)
		} else {
			for _, metadata := range remote {
				existing[metadata.EventCode] = true
			}
		}

		for _, event := range events {
			if event.ProviderKey != provider.Key {
				continue
			}

			if existing[event.EventCode] {
				r.logger.Info("event metadata already exists",
					"provider_id", provider.ID,
					"event_code", event.EventCode)
				results = append(results, EventResult{
					Skipped:  true,
					Event:    ResolvedEvent{EventCode: event.EventCode},
					Provider: provider,
					Reason:   skipReasonExists,
				})
				continue
			}

			payload := ioevents.EventMetadataPayload{
				EventCode:   event.EventCode,
				Label:       event.EventCode,
				Description: event.EventCode,
			}
			if event.SampleEventTemplate != nil {
				payload.SampleEventTemplate = event.SampleEventTemplate
			}

			created, err := r.store.Create(ctx, provider.ID, payload)
			if err != nil {
				r.logger.Error("event metadata creation failed",
					"provider_id", provider.ID,
					"event_code", event.EventCode,
					"error", err)
				results = append(results, EventResult{
					Event:    ResolvedEvent{EventCode: event.EventCode},
					Provider: provider,
					Error:    err.Error(),
				})
				continue
			}

			// The API does not always echo an id; fall back to the
			// response's event code, then the input's.
			id := created.ID
			if id == "" {
				id = created.EventCode
			}
			if id == "" {
				id = event.EventCode
			}
			r.logger.Info("event metadata created",
				"provider_id", provider.ID,
				"event_code", event.EventCode)
			results = append(results, EventResult{
				Created:  true,
				Event:    ResolvedEvent{ID: id, EventCode: event.EventCode},
				Provider: provider,
				Raw:      created,
			})
		}
	}

	return results
}
